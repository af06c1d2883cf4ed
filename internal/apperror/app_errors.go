package apperror

import "errors"

var (
	ErrAlreadyInGame      = errors.New("you are already in a game")
	ErrRoomNotFound       = errors.New("game code not found")
	ErrGameNotFound       = errors.New("game not found")
	ErrGameFull           = errors.New("game is full")
	ErrWaitingForOpponent = errors.New("waiting for opponent")
	ErrNotInGame          = errors.New("you are not part of this game")
	ErrNotYourTurn        = errors.New("it's not your turn")
	ErrInvalidPosition    = errors.New("invalid position")
	ErrCellOccupied       = errors.New("cell is already occupied")
)

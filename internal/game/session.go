package game

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/board"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const maxPlayers = 2

// Session owns one game's mutable state and enforces the turn, placement and
// scoring rules. All operations take the session lock, so concurrent
// connections touching the same room are strictly serialized. Sessions are
// fully independent of each other.
type Session struct {
	mu sync.Mutex

	code        string
	grid        board.Board
	players     []*entity.Player
	scores      map[string]int
	currentTurn int
	winLine     []board.Position
}

// Snapshot is a deep copy of the session state, safe to marshal and send
// after the session lock has been released.
type Snapshot struct {
	Room        string
	Board       board.Board
	Players     []string
	Names       map[string]string
	Scores      map[string]int
	CurrentTurn int
}

// MoveOutcome describes the result of a successful stone placement.
type MoveOutcome struct {
	Row         int
	Col         int
	PlayerIndex int
	Board       board.Board
	CurrentTurn int
	Players     []string

	// Set only when the placement completed a line of five.
	WinLine    []board.Position
	WinnerID   string
	WinnerName string
	Scores     map[string]int
}

// RemovalOutcome tells the caller what to do with the session after a
// player left it.
type RemovalOutcome struct {
	Removed   bool
	Empty     bool
	Reopened  bool
	Remaining []string
}

// NewSession returns a waiting session with an empty starting board.
func NewSession(code string) *Session {
	return &Session{
		code:   code,
		grid:   board.New(board.StartingSize),
		scores: make(map[string]int),
	}
}

// Code returns the room code the session is registered under.
func (that *Session) Code() string {
	return that.code
}

// Snapshot returns a deep copy of the current session state.
func (that *Session) Snapshot() *Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.snapshotLocked()
}

// AddPlayer puts a player into the next free slot. The slot order defines
// the player index and with it the stone value. An empty name falls back to
// "Player <n>".
func (that *Session) AddPlayer(id, name string) (*Snapshot, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if len(that.players) >= maxPlayers {
		return nil, apperror.ErrGameFull
	}

	if name == "" {
		name = fmt.Sprintf("Player %d", len(that.players)+1)
	}

	that.players = append(that.players, &entity.Player{ID: id, Name: name})
	that.scores[id] = 0

	return that.snapshotLocked(), nil
}

// PlaceStone attempts a move for the given player. On a win the scorer's
// score goes up by one, the board grows by one row and column with all
// stones preserved, and the scorer keeps the turn. On a plain move the turn
// flips to the other player.
func (that *Session) PlaceStone(playerID string, row, col int) (*MoveOutcome, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if len(that.players) < maxPlayers {
		return nil, apperror.ErrWaitingForOpponent
	}

	index := that.slotLocked(playerID)
	if index < 0 {
		return nil, apperror.ErrNotInGame
	}

	if index != that.currentTurn {
		return nil, apperror.ErrNotYourTurn
	}

	winLine, err := that.grid.Place(row, col, index+1)
	switch {
	case errors.Is(err, board.ErrOutOfBounds):
		return nil, apperror.ErrInvalidPosition
	case errors.Is(err, board.ErrCellOccupied):
		return nil, apperror.ErrCellOccupied
	case err != nil:
		return nil, fmt.Errorf("failed to place stone: %w", err)
	}

	outcome := &MoveOutcome{
		Row:         row,
		Col:         col,
		PlayerIndex: index,
	}

	if winLine != nil {
		winner := that.players[index]

		that.scores[winner.ID]++
		that.winLine = winLine
		that.grid = that.grid.Expand()
		that.currentTurn = index

		outcome.WinLine = winLine
		outcome.WinnerID = winner.ID
		outcome.WinnerName = winner.Name
		outcome.Scores = that.scoresLocked()
	} else {
		that.currentTurn = 1 - that.currentTurn
	}

	outcome.Board = that.grid.Clone()
	outcome.CurrentTurn = that.currentTurn
	for _, player := range that.players {
		outcome.Players = append(outcome.Players, player.ID)
	}

	return outcome, nil
}

// Reset restores the starting board, zeroes every score and gives the turn
// back to player 0. It always succeeds.
func (that *Session) Reset() *Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.grid = board.New(board.StartingSize)
	that.currentTurn = 0
	that.winLine = nil
	for id := range that.scores {
		that.scores[id] = 0
	}

	return that.snapshotLocked()
}

// RemovePlayer drops the player's slot, name and score. With nobody left the
// session should be destroyed; with one player left the board is reopened at
// its starting size (the remaining score is kept) so a new opponent can join
// the same code.
func (that *Session) RemovePlayer(playerID string) *RemovalOutcome {
	that.mu.Lock()
	defer that.mu.Unlock()

	index := that.slotLocked(playerID)
	if index < 0 {
		return &RemovalOutcome{}
	}

	that.players = append(that.players[:index], that.players[index+1:]...)
	delete(that.scores, playerID)

	outcome := &RemovalOutcome{Removed: true}

	if len(that.players) == 0 {
		outcome.Empty = true
		return outcome
	}

	that.grid = board.New(board.StartingSize)
	that.currentTurn = 0
	that.winLine = nil

	outcome.Reopened = true
	for _, player := range that.players {
		outcome.Remaining = append(outcome.Remaining, player.ID)
	}

	return outcome
}

// slot index of the player, or -1 if not part of this session.
func (that *Session) slotLocked(playerID string) int {
	for i, player := range that.players {
		if player.ID == playerID {
			return i
		}
	}

	return -1
}

func (that *Session) scoresLocked() map[string]int {
	scores := make(map[string]int, len(that.scores))
	for id, score := range that.scores {
		scores[id] = score
	}

	return scores
}

func (that *Session) snapshotLocked() *Snapshot {
	snapshot := &Snapshot{
		Room:        that.code,
		Board:       that.grid.Clone(),
		Names:       make(map[string]string, len(that.players)),
		Scores:      that.scoresLocked(),
		CurrentTurn: that.currentTurn,
	}

	for _, player := range that.players {
		snapshot.Players = append(snapshot.Players, player.ID)
		snapshot.Names[player.ID] = player.Name
	}

	return snapshot
}

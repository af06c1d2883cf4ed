package websocket

import (
	"context"
	"errors"
	"strings"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

func (that *Server) handleCreateGame(_ context.Context, client *Client, message *Message) error {
	log := that.logger.With("method", "handleCreateGame")

	record, ok := that.directory.Get(client)
	if !ok {
		return nil
	}

	if record.Room != "" {
		that.sendError(client, "You are already in a game")
		return nil
	}

	session := that.registry.Create()

	if _, err := session.AddPlayer(record.PlayerID, message.Name); err != nil {
		that.registry.Destroy(session.Code())
		return err
	}

	that.directory.Bind(client, session.Code())

	that.send(client, gameCreatedMessage{Type: "gameCreated", Room: session.Code()})

	log.Info("game created", "room", session.Code(), "playerID", record.PlayerID)

	return nil
}

func (that *Server) handleJoinGame(_ context.Context, client *Client, message *Message) error {
	log := that.logger.With("method", "handleJoinGame")

	record, ok := that.directory.Get(client)
	if !ok {
		return nil
	}

	if record.Room != "" {
		that.sendError(client, "You are already in a game")
		return nil
	}

	room := strings.ToUpper(strings.TrimSpace(message.Room))

	session, ok := that.registry.Find(room)
	if room == "" || !ok {
		that.sendError(client, "Game code not found")
		return nil
	}

	snapshot, err := session.AddPlayer(record.PlayerID, message.Name)
	if errors.Is(err, apperror.ErrGameFull) {
		that.sendError(client, "Game is full")
		return nil
	}

	if err != nil {
		return err
	}

	that.directory.Bind(client, session.Code())

	that.broadcast(snapshot.Players, gameStartedMessage{
		Type:        "gameStarted",
		Room:        snapshot.Room,
		Board:       snapshot.Board,
		Players:     snapshot.Players,
		Names:       snapshot.Names,
		Scores:      snapshot.Scores,
		CurrentTurn: snapshot.CurrentTurn,
	})

	log.Info("player joined game", "room", session.Code(), "playerID", record.PlayerID)

	return nil
}

func (that *Server) handlePlaceStone(ctx context.Context, client *Client, message *Message) error {
	log := that.logger.With("method", "handlePlaceStone")

	record, ok := that.directory.Get(client)
	if !ok {
		return nil
	}

	session, ok := that.registry.Find(record.Room)
	if record.Room == "" || !ok {
		that.sendError(client, "Game not found")
		return nil
	}

	if message.Row == nil || message.Col == nil {
		that.sendError(client, "Invalid row or column")
		return nil
	}

	outcome, err := session.PlaceStone(record.PlayerID, *message.Row, *message.Col)
	if err != nil {
		if text := rejectionText(err); text != "" {
			that.sendError(client, text)
			return nil
		}

		return err
	}

	if outcome.WinLine != nil {
		that.broadcast(outcome.Players, scoreUpdateMessage{
			Type:         "scoreUpdate",
			Scores:       outcome.Scores,
			Winner:       outcome.WinnerID,
			WinPositions: outcome.WinLine,
		})

		that.recordWin(ctx, outcome.WinnerName)
	}

	that.broadcast(outcome.Players, moveMadeMessage{
		Type:        "moveMade",
		Room:        record.Room,
		Row:         outcome.Row,
		Col:         outcome.Col,
		PlayerIndex: outcome.PlayerIndex,
		Board:       outcome.Board,
		CurrentTurn: outcome.CurrentTurn,
	})

	log.Debug("stone placed", "room", record.Room, "row", outcome.Row, "col", outcome.Col, "win", outcome.WinLine != nil)

	return nil
}

func (that *Server) handleResetGame(_ context.Context, client *Client, _ *Message) error {
	log := that.logger.With("method", "handleResetGame")

	record, ok := that.directory.Get(client)
	if !ok {
		return nil
	}

	session, ok := that.registry.Find(record.Room)
	if record.Room == "" || !ok {
		that.sendError(client, "Game not found")
		return nil
	}

	snapshot := session.Reset()

	that.broadcast(snapshot.Players, gameResetMessage{
		Type:        "gameReset",
		Board:       snapshot.Board,
		Scores:      snapshot.Scores,
		CurrentTurn: snapshot.CurrentTurn,
	})

	log.Info("game reset", "room", record.Room, "playerID", record.PlayerID)

	return nil
}

// handleDisconnect - cleans up after a connection went away, on any path.
// The remaining player, if there is one, gets a best-effort playerLeft
// notification and a reopened board.
func (that *Server) handleDisconnect(client *Client) {
	log := that.logger.With("method", "handleDisconnect")

	record, ok := that.directory.Unregister(client)
	if !ok {
		return
	}

	log.Info("player disconnected", "playerID", record.PlayerID)

	if record.Room == "" {
		return
	}

	session, ok := that.registry.Find(record.Room)
	if !ok {
		return
	}

	outcome := session.RemovePlayer(record.PlayerID)
	if !outcome.Removed {
		return
	}

	if outcome.Empty {
		that.registry.Destroy(record.Room)
		log.Info("game destroyed", "room", record.Room)
		return
	}

	that.broadcast(outcome.Remaining, playerLeftMessage{Type: "playerLeft", PlayerID: record.PlayerID})
}

// recordWin - bumps the winner's lifetime counter. Leaderboard failures are
// logged and never surfaced to clients.
func (that *Server) recordWin(ctx context.Context, playerName string) {
	if that.leaderboard == nil {
		return
	}

	if err := that.leaderboard.AddWin(ctx, playerName); err != nil {
		that.logger.With("method", "recordWin").Error("failed to record win", "player", playerName, "error", err)
	}
}

// rejectionText maps a rejected operation to the error string the client
// protocol expects, or "" for internal errors.
func rejectionText(err error) string {
	switch {
	case errors.Is(err, apperror.ErrWaitingForOpponent):
		return "Waiting for opponent"
	case errors.Is(err, apperror.ErrNotInGame):
		return "You are not part of this game"
	case errors.Is(err, apperror.ErrNotYourTurn):
		return "Not your turn"
	case errors.Is(err, apperror.ErrInvalidPosition):
		return "Invalid position"
	case errors.Is(err, apperror.ErrCellOccupied):
		return "Cell already occupied"
	default:
		return ""
	}
}

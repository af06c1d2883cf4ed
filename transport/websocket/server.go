package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/gomoku-backend/internal/game"
)

// leaderboard records lifetime win counts; nil disables the feature.
type leaderboard interface {
	AddWin(ctx context.Context, playerName string) error
}

type Server struct {
	logger      *slog.Logger
	registry    *game.Registry
	directory   *Directory
	leaderboard leaderboard

	upgrader websocket.Upgrader
	handlers map[string]func(ctx context.Context, client *Client, message *Message) error
}

func New(logger *slog.Logger, registry *game.Registry, leaderboardRepo leaderboard) *Server {
	server := &Server{
		logger:      logger,
		registry:    registry,
		directory:   NewDirectory(),
		leaderboard: leaderboardRepo,

		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
		handlers: make(map[string]func(context.Context, *Client, *Message) error),
	}

	server.handlers[actionCreateGame] = server.handleCreateGame
	server.handlers[actionJoinGame] = server.handleJoinGame
	server.handlers[actionPlaceStone] = server.handlePlaceStone
	server.handlers[actionResetGame] = server.handleResetGame

	return server
}

// Start - starts the WebSocket server and blocks until it stops.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveConnection(ctx, w, r)
	})

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     mux,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveConnection - upgrades the request and runs the connection's read loop.
func (that *Server) serveConnection(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "serveConnection")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	client := newClient(conn)
	playerID := that.directory.Register(client)

	go client.writePump()

	log.Info("WebSocket connection established", "playerID", playerID)

	that.send(client, idMessage{Type: "id", ID: playerID})

	that.readLoop(ctx, client)

	that.handleDisconnect(client)
	client.close()
}

// readLoop - processes inbound messages until the peer goes away. Messages
// from one connection are handled strictly in arrival order.
func (that *Server) readLoop(ctx context.Context, client *Client) {
	log := that.logger.With("method", "readLoop")

	client.conn.SetReadLimit(maxMessageSize)
	_ = client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("connection closed unexpectedly", "error", err)
			}
			return
		}

		that.dispatch(ctx, client, data)
	}
}

// dispatch - decodes one inbound payload and routes it to its handler.
// Protocol faults only ever produce an error reply to the sender; the
// connection stays open.
func (that *Server) dispatch(ctx context.Context, client *Client, data []byte) {
	log := that.logger.With("method", "dispatch")

	var message Message
	if err := json.Unmarshal(data, &message); err != nil {
		that.sendError(client, "Invalid JSON")
		return
	}

	handler, ok := that.handlers[message.Type]
	if !ok {
		that.sendError(client, fmt.Sprintf("Unknown message type: %s", message.Type))
		return
	}

	if err := handler(ctx, client, &message); err != nil {
		log.Error("error processing message", "type", message.Type, "error", err)
	}
}

// send - marshals a payload and queues it for one client. Failures are
// logged and swallowed; a stalled recipient never poisons the session.
func (that *Server) send(client *Client, payload any) {
	log := that.logger.With("method", "send")

	data, err := json.Marshal(payload)
	if err != nil {
		log.Error("failed to marshal payload", "error", err)
		return
	}

	if !client.enqueue(data) {
		log.Debug("dropped message for slow or closed client")
	}
}

func (that *Server) sendError(client *Client, text string) {
	that.send(client, errorMessage{Type: "error", Message: text})
}

// broadcast - fans a payload out to every listed player independently.
func (that *Server) broadcast(playerIDs []string, payload any) {
	log := that.logger.With("method", "broadcast")

	data, err := json.Marshal(payload)
	if err != nil {
		log.Error("failed to marshal payload", "error", err)
		return
	}

	for _, playerID := range playerIDs {
		client, ok := that.directory.Lookup(playerID)
		if !ok {
			log.Debug("connection not found for player", "playerID", playerID)
			continue
		}

		if !client.enqueue(data) {
			log.Debug("dropped broadcast for slow or closed client", "playerID", playerID)
		}
	}
}

package websocket

import "github.com/rocketscienceinc/gomoku-backend/internal/board"

const (
	actionCreateGame = "createGame"
	actionJoinGame   = "joinGame"
	actionPlaceStone = "placeStone"
	actionResetGame  = "resetGame"
)

// Message is the inbound envelope. The Type field selects the handler; the
// remaining fields are type-specific. Row and Col are pointers so that a
// missing coordinate can be told apart from zero.
type Message struct {
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
	Room string `json:"room,omitempty"`
	Row  *int   `json:"row,omitempty"`
	Col  *int   `json:"col,omitempty"`
}

type idMessage struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type gameCreatedMessage struct {
	Type string `json:"type"`
	Room string `json:"room"`
}

type gameStartedMessage struct {
	Type        string            `json:"type"`
	Room        string            `json:"room"`
	Board       board.Board       `json:"board"`
	Players     []string          `json:"players"`
	Names       map[string]string `json:"names"`
	Scores      map[string]int    `json:"scores"`
	CurrentTurn int               `json:"currentTurn"`
}

type moveMadeMessage struct {
	Type        string      `json:"type"`
	Room        string      `json:"room"`
	Row         int         `json:"row"`
	Col         int         `json:"col"`
	PlayerIndex int         `json:"playerIndex"`
	Board       board.Board `json:"board"`
	CurrentTurn int         `json:"currentTurn"`
}

type scoreUpdateMessage struct {
	Type         string           `json:"type"`
	Scores       map[string]int   `json:"scores"`
	Winner       string           `json:"winner"`
	WinPositions []board.Position `json:"winPositions"`
}

type gameResetMessage struct {
	Type        string         `json:"type"`
	Board       board.Board    `json:"board"`
	Scores      map[string]int `json:"scores"`
	CurrentTurn int            `json:"currentTurn"`
}

type playerLeftMessage struct {
	Type     string `json:"type"`
	PlayerID string `json:"playerId"`
}

type errorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

package websocket

import (
	"sync"

	"github.com/google/uuid"
)

// Record tracks what the server knows about one live connection: the player
// id assigned at connect time and the room the connection is bound to, if
// any. The directory owns only identifiers; session state lives elsewhere.
type Record struct {
	PlayerID string
	Room     string
}

// Directory maps live connections to their records and player ids back to
// connections for broadcast fan-out.
type Directory struct {
	mu       sync.RWMutex
	records  map[*Client]*Record
	byPlayer map[string]*Client
}

func NewDirectory() *Directory {
	return &Directory{
		records:  make(map[*Client]*Record),
		byPlayer: make(map[string]*Client),
	}
}

// Register assigns a fresh opaque player id to the connection and records it
// as unbound.
func (that *Directory) Register(client *Client) string {
	playerID := uuid.NewString()

	that.mu.Lock()
	defer that.mu.Unlock()

	that.records[client] = &Record{PlayerID: playerID}
	that.byPlayer[playerID] = client

	return playerID
}

// Get returns a copy of the connection's record.
func (that *Directory) Get(client *Client) (Record, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	record, ok := that.records[client]
	if !ok {
		return Record{}, false
	}

	return *record, true
}

// Bind associates the connection with a room.
func (that *Directory) Bind(client *Client, room string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if record, ok := that.records[client]; ok {
		record.Room = room
	}
}

// Unbind clears the connection's room membership.
func (that *Directory) Unbind(client *Client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if record, ok := that.records[client]; ok {
		record.Room = ""
	}
}

// Unregister removes the connection and returns its final record for
// cleanup. It returns false if the connection was already removed, so
// overlapping shutdown and error paths are safe.
func (that *Directory) Unregister(client *Client) (Record, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	record, ok := that.records[client]
	if !ok {
		return Record{}, false
	}

	delete(that.records, client)
	delete(that.byPlayer, record.PlayerID)

	return *record, true
}

// Lookup resolves a player id to its live connection.
func (that *Directory) Lookup(playerID string) (*Client, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	client, ok := that.byPlayer[playerID]

	return client, ok
}

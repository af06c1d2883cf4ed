package entity

// Player is identified by an ephemeral id assigned when its connection is
// registered. A player belongs to at most one session at a time.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

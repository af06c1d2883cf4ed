package game

import (
	"crypto/rand"
	"math/big"
	"strings"
	"sync"
)

const (
	roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	roomCodeLength   = 6
)

// Registry owns every live session and maps room codes to them. Codes are
// six characters from A-Z0-9, resampled on collision against the live set.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
	}
}

// Create registers a new waiting session under a fresh room code.
func (that *Registry) Create() *Session {
	that.mu.Lock()
	defer that.mu.Unlock()

	code := that.generateCodeLocked()
	session := NewSession(code)
	that.sessions[code] = session

	return session
}

// Find looks up a session by room code. Codes are case-insensitive on input.
func (that *Registry) Find(code string) (*Session, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	session, ok := that.sessions[strings.ToUpper(code)]

	return session, ok
}

// Destroy removes the session; it is a no-op if the code is already gone.
func (that *Registry) Destroy(code string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.sessions, strings.ToUpper(code))
}

// generateCodeLocked draws codes until one misses the live set. With 36^6
// possible codes a collision is all but impossible, so this is expected to
// return on the first draw.
func (that *Registry) generateCodeLocked() string {
	for {
		code := randomCode()
		if _, exists := that.sessions[code]; !exists {
			return code
		}
	}
}

func randomCode() string {
	alphabetSize := big.NewInt(int64(len(roomCodeAlphabet)))

	var builder strings.Builder
	for i := 0; i < roomCodeLength; i++ {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			// crypto/rand never fails on supported platforms
			panic(err)
		}

		builder.WriteByte(roomCodeAlphabet[n.Int64()])
	}

	return builder.String()
}

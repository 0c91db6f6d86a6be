package auth

import (
	"sync"
	"time"
)

// RevocationList is the process-wide set of bearer tokens that must be
// rejected regardless of signature validity. It keeps the token's embedded
// expiry next to each entry so that entries whose token has expired anyway
// can be dropped: the codec already rejects expired tokens, so keeping
// them here only grows memory.
//
// Entries revoked with an unknown expiry (tokens that never verified) are
// kept for the lifetime of the process.
type RevocationList struct {
	mu      sync.RWMutex
	entries map[string]time.Time
	now     func() time.Time
}

func NewRevocationList() *RevocationList {
	return &RevocationList{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Revoke adds the raw token string to the list. Revoking the same string
// twice is a no-op. A zero expiresAt marks the entry as never evictable.
func (l *RevocationList) Revoke(tokenString string, expiresAt time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.purgeLocked()

	if _, ok := l.entries[tokenString]; ok {
		return
	}
	l.entries[tokenString] = expiresAt
}

// IsRevoked reports whether the raw token string has been revoked and its
// embedded expiry has not yet passed.
func (l *RevocationList) IsRevoked(tokenString string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	expiresAt, ok := l.entries[tokenString]
	if !ok {
		return false
	}
	if !expiresAt.IsZero() && expiresAt.Before(l.now()) {
		// Already unusable through the codec's expiry check.
		return false
	}
	return true
}

// Len returns the number of retained entries.
func (l *RevocationList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// purgeLocked drops entries whose token expiry has passed. Caller must
// hold the write lock.
func (l *RevocationList) purgeLocked() {
	now := l.now()
	for token, expiresAt := range l.entries {
		if !expiresAt.IsZero() && expiresAt.Before(now) {
			delete(l.entries, token)
		}
	}
}

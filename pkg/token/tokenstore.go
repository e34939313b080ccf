// Package tokenstore remembers revoked session tokens in memory. Entries
// carry the issuing token's lifetime, so the set stays bounded by sessions
// that could still be presented. For multi-instance deployments move this
// to Redis.
package tokenstore

import (
	"sync"
	"time"
)

// TokenLifetime is the expiry set on issued session tokens. A revoked jti
// only needs remembering until the token itself would have expired.
const TokenLifetime = 24 * time.Hour

var (
	mu      sync.Mutex
	revoked = map[string]time.Time{} // jti -> when the entry can be dropped
)

// RevokeToken marks a jti as revoked for the remaining token lifetime and
// sweeps out entries whose tokens have since expired.
func RevokeToken(jti string) {
	if jti == "" {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	now := time.Now()
	for id, exp := range revoked {
		if exp.Before(now) {
			delete(revoked, id)
		}
	}
	revoked[jti] = now.Add(TokenLifetime)
}

// IsRevoked reports whether a jti was revoked and its token could still be
// alive. Expired entries are dropped on sight.
func IsRevoked(jti string) bool {
	if jti == "" {
		return false
	}
	mu.Lock()
	defer mu.Unlock()
	exp, ok := revoked[jti]
	if !ok {
		return false
	}
	if time.Now().After(exp) {
		delete(revoked, jti)
		return false
	}
	return true
}

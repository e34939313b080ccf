package tokenstore

import (
	"testing"
	"time"
)

func TestRevokeAndCheck(t *testing.T) {
	RevokeToken("jti-revoked")

	if !IsRevoked("jti-revoked") {
		t.Fatal("expected revoked jti to be reported")
	}
	if IsRevoked("jti-other") {
		t.Fatal("unrevoked jti reported as revoked")
	}
	if IsRevoked("") {
		t.Fatal("empty jti reported as revoked")
	}
}

func TestExpiredEntriesAreDropped(t *testing.T) {
	mu.Lock()
	revoked["jti-stale"] = time.Now().Add(-time.Minute)
	mu.Unlock()

	if IsRevoked("jti-stale") {
		t.Fatal("entry past its token lifetime still reported as revoked")
	}
	mu.Lock()
	_, ok := revoked["jti-stale"]
	mu.Unlock()
	if ok {
		t.Fatal("expired entry not removed from the store")
	}
}

func TestRevokeSweepsExpiredEntries(t *testing.T) {
	mu.Lock()
	revoked["jti-old"] = time.Now().Add(-time.Minute)
	mu.Unlock()

	RevokeToken("jti-new")

	mu.Lock()
	_, oldKept := revoked["jti-old"]
	_, newKept := revoked["jti-new"]
	mu.Unlock()
	if oldKept {
		t.Fatal("sweep kept an entry past its token lifetime")
	}
	if !newKept {
		t.Fatal("freshly revoked jti missing from the store")
	}
}

package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestDenylist(t *testing.T) (*miniredis.Miniredis, redisTokenDenylist) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return server, redisTokenDenylist{client: client}
}

func TestRedisTokenDenylist(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown token is not revoked", func(t *testing.T) {
		_, denylist := newTestDenylist(t)

		revoked, err := denylist.IsRevoked(ctx, "unknown-jti")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if revoked {
			t.Error("expected token to not be revoked")
		}
	})

	t.Run("revoked token is reported revoked", func(t *testing.T) {
		_, denylist := newTestDenylist(t)

		if err := denylist.Revoke(ctx, "some-jti", time.Minute); err != nil {
			t.Fatalf("revoke failed: %v", err)
		}

		revoked, err := denylist.IsRevoked(ctx, "some-jti")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !revoked {
			t.Error("expected token to be revoked")
		}
	})

	t.Run("entry expires with the token lifetime", func(t *testing.T) {
		server, denylist := newTestDenylist(t)

		if err := denylist.Revoke(ctx, "short-lived", time.Minute); err != nil {
			t.Fatalf("revoke failed: %v", err)
		}

		server.FastForward(2 * time.Minute)

		revoked, err := denylist.IsRevoked(ctx, "short-lived")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if revoked {
			t.Error("expected revocation to expire with the token")
		}
	})
}

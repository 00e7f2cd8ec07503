package testing

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// StartMiniredis starts an in-process Redis server for testing and
// returns a client connected to it.
//
// Both the server and the client are cleaned up automatically when the
// test completes.
//
// Parameters:
//   - t: Testing context for logging and cleanup
//
// Returns:
//   - *miniredis.Miniredis: The embedded Redis server instance
//   - *redis.Client: Connected Redis client (closed automatically)
//
// Example:
//
//	func TestChannel(t *testing.T) {
//	    _, client := tabtest.StartMiniredis(t)
//	    ch, _ := channel.NewRedis(client, channel.Config{Subject: "test"})
//	}
func StartMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Cleanup(func() {
		_ = client.Close()
	})

	return mr, client
}

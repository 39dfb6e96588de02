package interfaces

import "context"

// ISessionStore holds the raw bearer token of one browser session.
//
// Get returns "" when nothing is stored. Clear is idempotent.
type ISessionStore interface {
	Get(ctx context.Context, sessionID string) (string, error)
	Set(ctx context.Context, sessionID, token string) error
	Clear(ctx context.Context, sessionID string) error
}

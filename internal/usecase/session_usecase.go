package usecase

import (
	"context"
	"fmt"
	"strings"

	"quotely/internal/domain/claims"
	"quotely/internal/domain/entities"
	"quotely/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// InvalidSessionNotice is shown once after a malformed token was purged.
const InvalidSessionNotice = "Your session was invalid and you have been signed out."

// ISessionUseCase exposes the stored bearer token as a decoded Session.
type ISessionUseCase interface {
	Current(ctx context.Context, sessionID string) entities.Session
	SignIn(ctx context.Context, sessionID, token string) (entities.Session, error)
	SignOut(ctx context.Context, sessionID string) error
}

type SessionUseCase struct {
	store  interfaces.ISessionStore
	logger *zap.Logger
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(store interfaces.ISessionStore, logger *zap.Logger) *SessionUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionUseCase{store: store, logger: logger}
}

// Current never fails. A malformed token is purged from the store on the spot and
// the caller gets an unauthenticated session carrying a notice. A store outage
// degrades to unauthenticated as well.
func (u *SessionUseCase) Current(ctx context.Context, sessionID string) entities.Session {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" || u.store == nil {
		return entities.Session{}
	}

	raw, err := u.store.Get(ctx, sessionID)
	if err != nil {
		u.logger.Warn("[session][usecase] token lookup failed", zap.String("session_id", sessionID), zap.Error(err))
		return entities.Session{}
	}

	c, err := claims.Decode(raw)
	if err != nil {
		u.logger.Info("[session][usecase] purging malformed token", zap.String("session_id", sessionID), zap.Error(err))
		if clearErr := u.store.Clear(ctx, sessionID); clearErr != nil {
			u.logger.Warn("[session][usecase] token purge failed", zap.String("session_id", sessionID), zap.Error(clearErr))
		}
		return entities.Session{Notice: InvalidSessionNotice}
	}
	if c == nil {
		return entities.Session{}
	}
	return entities.Session{RawToken: strings.TrimSpace(raw), Claims: c}
}

// SignIn stores a token handed over by the login flow. Tokens that cannot be
// decoded are refused and nothing is stored.
func (u *SessionUseCase) SignIn(ctx context.Context, sessionID, token string) (entities.Session, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Session{}, ErrInvalidSessionID
	}
	token = strings.TrimSpace(token)
	c, err := claims.Decode(token)
	if err != nil {
		return entities.Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if c == nil {
		return entities.Session{}, ErrInvalidToken
	}
	if err := u.store.Set(ctx, sessionID, token); err != nil {
		return entities.Session{}, err
	}
	u.logger.Info("[session][usecase] signed in", zap.String("session_id", sessionID), zap.String("role", string(c.Role)))
	return entities.Session{RawToken: token, Claims: c}, nil
}

// SignOut is idempotent.
func (u *SessionUseCase) SignOut(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil
	}
	return u.store.Clear(ctx, sessionID)
}

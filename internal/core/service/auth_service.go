package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mianwali/crop-advisory/internal/core/domain"
)

// Authenticate checks username, password and role against the directory and,
// on success, makes the user the active session. A later successful call
// replaces the session.
func (a *Advisory) Authenticate(_ context.Context, username, password, role string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domain.ErrEmptyCredential
	}

	a.mu.RLock()
	user, ok := a.users.FindByUsername(username)
	a.mu.RUnlock()

	if !ok || user.Role != role {
		a.logger.Debug().Str("username", username).Str("role", role).Msg("authentication rejected")
		return nil, domain.ErrAuthenticationFailed
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		a.logger.Debug().Str("username", username).Msg("authentication rejected")
		return nil, domain.ErrAuthenticationFailed
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.session = &user
	a.appendLocked("User logged in: " + user.Username + " (" + user.Role + ")")

	a.logger.Info().Str("username", user.Username).Str("role", user.Role).Msg("user logged in")
	out := user
	return &out, nil
}

// Logout ends the active session. Calling it without one is a caller error
// reported as domain.ErrNoActiveSession.
func (a *Advisory) Logout(_ context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session == nil {
		return domain.ErrNoActiveSession
	}
	username := a.session.Username
	a.session = nil
	a.appendLocked("User logged out: " + username)

	a.logger.Info().Str("username", username).Msg("user logged out")
	return nil
}

// CurrentUser returns the user holding the session, if any.
func (a *Advisory) CurrentUser(_ context.Context) (*domain.User, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.session == nil {
		return nil, false
	}
	u := *a.session
	return &u, true
}

// ListUsers returns every known user, marking the one holding the session.
func (a *Advisory) ListUsers(_ context.Context) []domain.UserSummary {
	a.mu.Lock()
	defer a.mu.Unlock()

	users := a.users.List()
	out := make([]domain.UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, domain.UserSummary{
			Username: u.Username,
			Role:     u.Role,
			Active:   a.session != nil && a.session.Username == u.Username,
		})
	}
	a.appendLocked("Viewed user list")
	return out
}

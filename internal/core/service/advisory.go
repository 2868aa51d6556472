package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/mianwali/crop-advisory/internal/core/domain"
	"github.com/mianwali/crop-advisory/internal/core/ports"
)

// InitMessage is the first audit entry written when the system starts.
const InitMessage = "System initialized - Mianwali District Agriculture Advisory"

var _ ports.AdvisoryService = (*Advisory)(nil)

// Advisory owns the catalog, the user directory, the session and the audit
// log. Every operation goes through its lock: mutations are serialised and
// readers see a consistent snapshot.
type Advisory struct {
	mu      sync.RWMutex
	catalog ports.CatalogRepository
	users   ports.UserRepository
	audit   ports.AuditLog
	session *domain.User

	now    func() time.Time
	logger zerolog.Logger
}

// Option customises an Advisory at construction time.
type Option func(*Advisory)

// WithClock replaces the wall clock used to stamp audit entries.
func WithClock(now func() time.Time) Option {
	return func(a *Advisory) {
		a.now = now
	}
}

// WithLogger sets the diagnostic logger. Defaults to a disabled logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(a *Advisory) {
		a.logger = logger
	}
}

// NewAdvisory wires the stores together. The stores are expected to hold the
// bootstrap seed already.
func NewAdvisory(catalog ports.CatalogRepository, users ports.UserRepository, audit ports.AuditLog, opts ...Option) *Advisory {
	a := &Advisory{
		catalog: catalog,
		users:   users,
		audit:   audit,
		now:     time.Now,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.appendLocked(InitMessage)
	a.logger.Info().
		Int("crops", catalog.Count()).
		Int("regions", len(catalog.Regions())).
		Int("users", users.Count()).
		Msg("advisory initialised")
	return a
}

// AppendAudit records message in the audit log.
func (a *Advisory) AppendAudit(_ context.Context, message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.appendLocked(message)
}

// AuditSnapshot returns the retained audit entries, oldest first.
func (a *Advisory) AuditSnapshot(_ context.Context) []domain.AuditEntry {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.audit.Snapshot()
}

// appendLocked must be called with a.mu held for writing.
func (a *Advisory) appendLocked(message string) {
	a.audit.Append(domain.AuditEntry{Time: a.now(), Message: message})
}

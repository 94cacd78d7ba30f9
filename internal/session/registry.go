package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/JeremiasReinoso/MiFelisa/internal/catalog"
	"github.com/JeremiasReinoso/MiFelisa/internal/order"
)

// DefaultTTL is how long an idle session is kept.
const DefaultTTL = 2 * time.Hour

// RegistryConfig configures a Registry.
type RegistryConfig struct {
	Catalog  *catalog.Catalog
	Composer *order.Composer
	Logger   *zap.Logger
	// TTL is the idle time after which Sweep evicts a session.
	TTL time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

// Registry maps session IDs to controllers. Each visitor gets an isolated
// controller; nothing is shared between sessions except the read-only
// catalog.
type Registry struct {
	cfg RegistryConfig

	mu       sync.Mutex
	sessions map[uuid.UUID]*Controller
}

// NewRegistry creates an empty registry.
func NewRegistry(cfg RegistryConfig) *Registry {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Composer == nil {
		cfg.Composer = order.NewComposer(nil)
	}
	return &Registry{cfg: cfg, sessions: make(map[uuid.UUID]*Controller)}
}

// Get returns the session for id.
func (r *Registry) Get(id uuid.UUID) (*Controller, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.sessions[id]
	return c, ok
}

// Open starts a fresh session under a new random ID. Client-supplied IDs
// are never used to create sessions; look them up with Get.
func (r *Registry) Open() *Controller {
	id := uuid.New()
	c := NewController(id, r.cfg.Catalog, r.cfg.Composer, r.cfg.Logger)
	c.now = r.cfg.Now
	c.lastSeen = c.now()

	r.mu.Lock()
	r.sessions[id] = c
	r.mu.Unlock()

	r.cfg.Logger.Info("session opened", zap.String("session", id.String()))
	return c
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep evicts sessions idle for longer than the TTL and returns how many
// were removed.
func (r *Registry) Sweep() int {
	cutoff := r.cfg.Now().Add(-r.cfg.TTL)

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, c := range r.sessions {
		if c.idleSince().Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		r.cfg.Logger.Info("sessions evicted", zap.Int("count", removed), zap.Int("remaining", len(r.sessions)))
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (r *Registry) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

package service

import (
	"context"
	"sync"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
)

const defaultVisitorIdleTimeout = 30 * time.Minute

// Visitor bundles the cart and session of one browser.
type Visitor struct {
	ID      string
	Cart    *CartManager
	Session *SessionManager
}

type visitorEntry struct {
	visitor  *Visitor
	lastSeen time.Time
	inUse    int
}

type VisitorRegistryConfig struct {
	// Scope returns the state store for one visitor's keys.
	Scope          func(visitorID string) repository.StateStore
	Pricing        Pricing
	IdleTimeout    time.Duration
	SessionOptions []SessionOption
	CartObservers  []CartObserver
	Now            func() time.Time
}

// VisitorRegistry caches managers per visitor id. Evicted visitors are
// rebuilt from the store on their next request.
type VisitorRegistry struct {
	mu       sync.Mutex
	visitors map[string]*visitorEntry
	cfg      VisitorRegistryConfig
	log      logger.Logger
}

func NewVisitorRegistry(cfg VisitorRegistryConfig, log logger.Logger) *VisitorRegistry {
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = defaultVisitorIdleTimeout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &VisitorRegistry{
		visitors: make(map[string]*visitorEntry),
		cfg:      cfg,
		log:      log,
	}
}

// Acquire returns the visitor's managers, loading them from the store on
// first use, and pins them until release is called. Pinned visitors are never
// swept, so a request always works on the same managers as any request that
// overlaps it.
func (r *VisitorRegistry) Acquire(ctx context.Context, visitorID string) (*Visitor, func()) {
	r.mu.Lock()
	entry, ok := r.visitors[visitorID]
	if !ok {
		r.mu.Unlock()
		built := r.build(ctx, visitorID)
		r.mu.Lock()
		if entry, ok = r.visitors[visitorID]; !ok {
			entry = &visitorEntry{visitor: built}
			r.visitors[visitorID] = entry
		}
	}
	entry.inUse++
	entry.lastSeen = r.cfg.Now()
	r.mu.Unlock()

	var once sync.Once
	release := func() {
		once.Do(func() {
			r.mu.Lock()
			entry.inUse--
			entry.lastSeen = r.cfg.Now()
			r.mu.Unlock()
		})
	}
	return entry.visitor, release
}

// Get returns the visitor's managers without pinning them.
func (r *VisitorRegistry) Get(ctx context.Context, visitorID string) *Visitor {
	v, release := r.Acquire(ctx, visitorID)
	release()
	return v
}

func (r *VisitorRegistry) build(ctx context.Context, visitorID string) *Visitor {
	log := r.log.With("visitor", visitorID)
	state := r.cfg.Scope(visitorID)
	return &Visitor{
		ID:      visitorID,
		Cart:    NewCartManager(ctx, state, r.cfg.Pricing, log, r.cfg.CartObservers...),
		Session: NewSessionManager(ctx, state, log, r.cfg.SessionOptions...),
	}
}

func (r *VisitorRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.visitors)
}

// Sweep drops unpinned visitors idle for longer than the idle timeout and
// returns how many were removed.
func (r *VisitorRegistry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.cfg.Now()
	removed := 0
	for id, entry := range r.visitors {
		if entry.inUse == 0 && now.Sub(entry.lastSeen) > r.cfg.IdleTimeout {
			delete(r.visitors, id)
			removed++
		}
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (r *VisitorRegistry) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.log.Debugf("Evicted %d idle visitors", n)
			}
		}
	}
}

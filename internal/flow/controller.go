package flow

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stevenguyen-wq/babyboss.tarot/internal/catalog"
	"github.com/stevenguyen-wq/babyboss.tarot/internal/draw"
	"github.com/stevenguyen-wq/babyboss.tarot/internal/eligibility"
	"github.com/stevenguyen-wq/babyboss.tarot/internal/models"
	"github.com/stevenguyen-wq/babyboss.tarot/internal/relay"
)

// State is a session's position in the Form → Drawing → Result
// progression. Result is terminal; a new visit starts a new session.
type State string

const (
	StateForm    State = "FORM"
	StateDrawing State = "DRAWING"
	StateResult  State = "RESULT"
)

// DrawingDuration is the fixed pacing delay before a session may show
// its result. It is presentational: the draw itself completes up front.
const DrawingDuration = 3500 * time.Millisecond

// Session tracks one visitor's progression. Entry is populated only
// once the session reaches StateResult.
type Session struct {
	ID        uuid.UUID
	State     State
	Identity  models.Identity
	Entry     *models.CatalogEntry
	StartedAt time.Time
}

// Controller sequences the draw flow. It owns the pacing timer, calls
// the engine, the eligibility store and the relay in that order, and
// never blocks on the relay.
type Controller struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	catalog *catalog.Catalog
	engine  *draw.Engine
	store   eligibility.Store
	relay   *relay.Relay

	pacing   time.Duration
	schedule func(time.Duration, func())
	now      func() time.Time
}

// NewController wires the core components together. Pass
// DrawingDuration as the pacing delay in production.
func NewController(cat *catalog.Catalog, engine *draw.Engine, store eligibility.Store, r *relay.Relay, pacing time.Duration) *Controller {
	return &Controller{
		sessions: make(map[uuid.UUID]*Session),
		catalog:  cat,
		engine:   engine,
		store:    store,
		relay:    r,
		pacing:   pacing,
		schedule: func(d time.Duration, f func()) { time.AfterFunc(d, f) },
		now:      time.Now,
	}
}

// Submit starts a session for an already-validated identity and returns
// it in StateDrawing. The draw, the eligibility write and the relay all
// happen before Submit returns; the transition to StateResult waits out
// the pacing delay regardless of how quickly they finished. A draw
// failure means the catalog is broken and halts the session before any
// state is created.
func (c *Controller) Submit(identity models.Identity) (Session, error) {
	entry, err := c.engine.Draw(c.catalog)
	if err != nil {
		return Session{}, fmt.Errorf("flow: draw failed: %w", err)
	}

	sess := &Session{
		ID:        uuid.New(),
		State:     StateDrawing,
		Identity:  identity,
		StartedAt: c.now(),
	}
	c.mu.Lock()
	c.sessions[sess.ID] = sess
	c.mu.Unlock()

	// Eligibility is recorded before the relay fires and before the
	// result becomes visible, so the gate holds even if the rest of the
	// session is torn down.
	c.store.MarkPlayed(eligibility.KeyFor(identity.PhoneNumber), entry.ID)
	c.relay.Send(models.SessionOutcome{
		Identity: identity,
		Entry:    entry,
		DrawnAt:  c.now(),
	})

	// Snapshot before the timer is armed: reveal mutates the shared
	// session under the lock, and with a short pacing delay it can fire
	// before Submit returns.
	out := *sess
	c.schedule(c.pacing, func() {
		c.reveal(out.ID, entry)
	})

	return out, nil
}

// reveal advances a session to StateResult with its drawn card.
func (c *Controller) reveal(id uuid.UUID, entry models.CatalogEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sess, ok := c.sessions[id]
	if !ok || sess.State != StateDrawing {
		return
	}
	sess.Entry = &entry
	sess.State = StateResult
}

// Get returns a snapshot of a session.
func (c *Controller) Get(id uuid.UUID) (Session, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	sess, ok := c.sessions[id]
	if !ok {
		return Session{}, false
	}
	return *sess, true
}

// CleanUpStale drops sessions older than maxAge and reports how many
// were removed. Dropping a session does not touch the eligibility
// record, which is never deleted.
func (c *Controller) CleanUpStale(maxAge time.Duration) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for id, sess := range c.sessions {
		if c.now().Sub(sess.StartedAt) > maxAge {
			delete(c.sessions, id)
			removed++
		}
	}
	return removed
}

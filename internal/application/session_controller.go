package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/symcheck/internal/domain"
	"github.com/bnema/symcheck/internal/ports"
	"go.uber.org/zap"
)

// SessionController owns the intake mode, the active session and its ledger.
// Messages can only be sent while the mode is domain.ModeActive.
type SessionController struct {
	gateway ports.Gateway
	clock   ports.Clock
	logger  *zap.Logger

	mu       sync.Mutex
	mode     domain.Mode
	starting bool
	session  *domain.Session
	ledger   *Ledger

	// generation changes on every End so a Start that was in flight can
	// tell it has been abandoned.
	generation uint64
}

func NewSessionController(gateway ports.Gateway, clock ports.Clock, logger *zap.Logger) *SessionController {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SessionController{
		gateway: gateway,
		clock:   clock,
		logger:  logger,
		mode:    domain.ModeIdle,
	}
}

func (c *SessionController) Mode() domain.Mode {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.mode
}

func (c *SessionController) BeginProfile() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	mode, err := c.mode.Transition(domain.ModeProfileEntry)
	if err != nil {
		return err
	}
	c.mode = mode

	return nil
}

// Start freezes profile, opens a gateway session and moves to active. On any
// failure the mode is left as it was so the caller can retry.
func (c *SessionController) Start(ctx context.Context, profile domain.PatientProfile) (domain.Session, error) {
	frozen := profile.Clone()
	frozen.NormalizeLists()

	c.mu.Lock()
	if c.starting {
		c.mu.Unlock()
		return domain.Session{}, fmt.Errorf("%w: session start already in progress", domain.ErrInvalidTransition)
	}
	from := c.mode
	if from == domain.ModeIdle {
		from = domain.ModeProfileEntry
	}
	if !from.CanTransition(domain.ModeActive) {
		c.mu.Unlock()
		return domain.Session{}, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, c.mode, domain.ModeActive)
	}
	if err := frozen.Validate(); err != nil {
		c.mu.Unlock()
		return domain.Session{}, err
	}
	c.starting = true
	generation := c.generation
	c.mu.Unlock()

	session, err := c.gateway.StartSession(ctx, frozen)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.starting = false

	if err != nil {
		c.logger.Warn("start session failed", zap.Error(err))
		return domain.Session{}, fmt.Errorf("start session: %w", err)
	}
	if c.generation != generation {
		c.logger.Info("session ended before start completed", zap.String("session_id", session.ID))
		return domain.Session{}, fmt.Errorf("%w: session ended while starting", domain.ErrInvalidTransition)
	}

	session.Patient = frozen
	if session.CreatedAt.IsZero() {
		session.CreatedAt = c.clock.Now()
	}
	c.session = &session
	c.ledger = NewLedger(session.ID, c.gateway, c.clock, c.logger)
	c.mode = domain.ModeActive

	c.logger.Info("session started", zap.String("session_id", session.ID))

	return cloneSession(session), nil
}

// End discards the in-memory session and ledger. Saved records are untouched.
func (c *SessionController) End() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != nil {
		c.logger.Info("session ended", zap.String("session_id", c.session.ID))
	}
	c.session = nil
	c.ledger = nil
	c.mode = domain.ModeIdle
	c.generation++
}

func (c *SessionController) Session() (domain.Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return domain.Session{}, false
	}

	return cloneSession(*c.session), true
}

func (c *SessionController) Ledger() (*Ledger, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.ledger, c.ledger != nil
}

func (c *SessionController) Submit(ctx context.Context, text string, severity int, duration string) (domain.ConversationTurn, error) {
	ledger, ok := c.Ledger()
	if !ok {
		return domain.ConversationTurn{}, domain.ErrNoActiveSession
	}

	return ledger.Submit(ctx, text, severity, duration)
}

func cloneSession(session domain.Session) domain.Session {
	session.Patient = session.Patient.Clone()
	return session
}

package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/symcheck/internal/domain"
	"github.com/bnema/symcheck/internal/ports"
	"go.uber.org/zap"
)

const ApologyMessage = "Sorry, I couldn't analyze your symptoms right now. Please try again in a moment."

// Ledger is the append-only record of one session's turns. At most one
// submission is in flight; the user turn is committed before the gateway call.
type Ledger struct {
	sessionID string
	gateway   ports.Gateway
	clock     ports.Clock
	logger    *zap.Logger

	mu        sync.Mutex
	turns     []domain.ConversationTurn
	lastID    int64
	lastStamp time.Time
	pending   bool

	appended broadcaster[domain.ConversationTurn]
}

func NewLedger(sessionID string, gateway ports.Gateway, clock ports.Clock, logger *zap.Logger) *Ledger {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Ledger{
		sessionID: sessionID,
		gateway:   gateway,
		clock:     clock,
		logger:    logger.With(zap.String("session_id", sessionID)),
	}
}

func (l *Ledger) SessionID() string {
	return l.sessionID
}

// Submit sends one symptom message. Invalid input fails with
// domain.ErrValidationRejected and a concurrent call with
// domain.ErrSubmissionPending; neither touches the ledger or the gateway.
// A gateway failure still leaves the user turn plus an apology turn behind.
func (l *Ledger) Submit(ctx context.Context, text string, severity int, duration string) (domain.ConversationTurn, error) {
	msg, err := domain.NewSymptomMessage(l.sessionID, text, severity, duration)
	if err != nil {
		return domain.ConversationTurn{}, err
	}

	l.mu.Lock()
	if l.pending {
		l.mu.Unlock()
		return domain.ConversationTurn{}, domain.ErrSubmissionPending
	}
	reported := msg.Severity
	userTurn := l.appendLocked(domain.RoleUser, msg.Text, &reported, nil)
	l.pending = true
	l.mu.Unlock()

	l.appended.publish(copyTurn(userTurn))

	result, sendErr := l.gateway.SendMessage(ctx, msg)

	l.mu.Lock()
	var reply domain.ConversationTurn
	if sendErr != nil {
		reply = l.appendLocked(domain.RoleAssistant, ApologyMessage, nil, nil)
	} else {
		assessment := result.Assessment.Normalize()
		reply = l.appendLocked(domain.RoleAssistant, assessment.Reasoning, nil, &assessment)
	}
	l.pending = false
	l.mu.Unlock()

	l.appended.publish(copyTurn(reply))

	if sendErr != nil {
		l.logger.Warn("symptom message failed", zap.Int64("turn_id", userTurn.ID), zap.Error(sendErr))
		return domain.ConversationTurn{}, fmt.Errorf("send symptom message: %w", sendErr)
	}

	return copyTurn(reply), nil
}

func (l *Ledger) Pending() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.pending
}

func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.turns)
}

func (l *Ledger) Turns() []domain.ConversationTurn {
	l.mu.Lock()
	defer l.mu.Unlock()

	turns := make([]domain.ConversationTurn, 0, len(l.turns))
	for _, turn := range l.turns {
		turns = append(turns, copyTurn(turn))
	}

	return turns
}

// LatestAssessment returns the assessment of the most recent assistant turn
// that carries one.
func (l *Ledger) LatestAssessment() (domain.Assessment, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := len(l.turns) - 1; i >= 0; i-- {
		if l.turns[i].Assessment != nil {
			return l.turns[i].Assessment.Clone(), true
		}
	}

	return domain.Assessment{}, false
}

// Subscribe registers fn for every appended turn, in append order.
func (l *Ledger) Subscribe(fn func(domain.ConversationTurn)) func() {
	return l.appended.subscribe(fn)
}

func (l *Ledger) appendLocked(role domain.Role, content string, severity *int, assessment *domain.Assessment) domain.ConversationTurn {
	now := l.clock.Now()
	if now.Before(l.lastStamp) {
		now = l.lastStamp
	}
	l.lastStamp = now
	l.lastID++

	turn := domain.ConversationTurn{
		ID:         l.lastID,
		Role:       role,
		Content:    content,
		Severity:   severity,
		Assessment: assessment,
		Timestamp:  now,
	}
	l.turns = append(l.turns, turn)

	return turn
}

func copyTurn(turn domain.ConversationTurn) domain.ConversationTurn {
	if turn.Severity != nil {
		severity := *turn.Severity
		turn.Severity = &severity
	}
	if turn.Assessment != nil {
		assessment := turn.Assessment.Clone()
		turn.Assessment = &assessment
	}

	return turn
}

package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/symcheck/internal/domain"
	"github.com/bnema/symcheck/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SaveRequest struct {
	SessionID  string
	Patient    domain.PatientInfo
	Assessment domain.Assessment
}

// SaveOutcome tells callers which tier stored the assessment. RemoteErr is set
// when the local tier had to take over.
type SaveOutcome struct {
	Tier      domain.PersistenceTier
	RecordID  string
	RemoteErr error
}

func (o SaveOutcome) Degraded() bool {
	return o.Tier == domain.TierLocal
}

type SavedEvent struct {
	Record domain.SavedAssessmentRecord
}

// PersistenceService saves assessments remotely first and falls back to the
// local store.
type PersistenceService struct {
	gateway ports.Gateway
	store   ports.AssessmentStore
	clock   ports.Clock
	logger  *zap.Logger
	newID   func() string

	saved broadcaster[SavedEvent]
}

func NewPersistenceService(gateway ports.Gateway, store ports.AssessmentStore, clock ports.Clock, logger *zap.Logger) *PersistenceService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &PersistenceService{
		gateway: gateway,
		store:   store,
		clock:   clock,
		logger:  logger,
		newID:   uuid.NewString,
	}
}

// Save returns an error only when neither tier stored the assessment; that
// error wraps domain.ErrPersistenceFailure.
func (s *PersistenceService) Save(ctx context.Context, req SaveRequest) (SaveOutcome, error) {
	if strings.TrimSpace(req.SessionID) == "" {
		return SaveOutcome{}, fmt.Errorf("%w: session id is required", domain.ErrValidationRejected)
	}

	remoteErr := s.gateway.SaveAssessment(ctx, req.SessionID, req.Assessment)
	if remoteErr == nil {
		s.logger.Info("assessment saved", zap.String("session_id", req.SessionID), zap.String("tier", string(domain.TierRemote)))
		return SaveOutcome{Tier: domain.TierRemote}, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return SaveOutcome{}, fmt.Errorf("%w: %w", domain.ErrPersistenceFailure, errors.Join(remoteErr, ctxErr))
	}

	s.logger.Warn("remote save failed, falling back to local store",
		zap.String("session_id", req.SessionID),
		zap.Error(remoteErr),
	)

	record := domain.SavedAssessmentRecord{
		ID:          s.newID(),
		SessionID:   req.SessionID,
		Assessment:  req.Assessment.Clone(),
		Timestamp:   s.clock.Now().UTC(),
		PatientInfo: req.Patient,
	}
	if err := s.store.Append(ctx, record); err != nil {
		s.logger.Error("local save failed", zap.String("session_id", req.SessionID), zap.Error(err))
		return SaveOutcome{}, fmt.Errorf("%w: remote save failed: %w; local save failed: %w", domain.ErrPersistenceFailure, remoteErr, err)
	}

	s.saved.publish(SavedEvent{Record: record})

	return SaveOutcome{Tier: domain.TierLocal, RecordID: record.ID, RemoteErr: remoteErr}, nil
}

// Subscribe registers fn for every record written to the local store.
func (s *PersistenceService) Subscribe(fn func(SavedEvent)) func() {
	return s.saved.subscribe(fn)
}

func (s *PersistenceService) List(ctx context.Context) ([]domain.SavedAssessmentRecord, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list saved assessments: %w", err)
	}

	return records, nil
}

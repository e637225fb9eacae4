package application

import (
	"context"
	"errors"
	"testing"
	"time"

	memoryrepo "github.com/bnema/symcheck/internal/adapters/repo/memory"
	"github.com/bnema/symcheck/internal/domain"
	"github.com/bnema/symcheck/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var saveTestTime = time.Date(2026, 10, 18, 10, 30, 0, 0, time.UTC)

func TestPersistenceSaveRemoteSuccessSkipsLocalStore(t *testing.T) {
	gateway := mocks.NewMockGateway(t)
	store := mocks.NewMockAssessmentStore(t)
	svc := NewPersistenceService(gateway, store, fixedClock{now: saveTestTime}, nil)

	assessment := domain.Assessment{Urgency: domain.UrgencyRoutine, Reasoning: "viral"}
	gateway.EXPECT().SaveAssessment(mockAnyContext(), "s-1", assessment).Return(nil).Once()

	notified := 0
	svc.Subscribe(func(SavedEvent) { notified++ })

	outcome, err := svc.Save(context.Background(), SaveRequest{SessionID: "s-1", Assessment: assessment})
	require.NoError(t, err)
	assert.Equal(t, domain.TierRemote, outcome.Tier)
	assert.False(t, outcome.Degraded())
	assert.NoError(t, outcome.RemoteErr)
	assert.Zero(t, notified)
	store.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestPersistenceSaveFallsBackToLocalAndNotifiesOnce(t *testing.T) {
	gateway := mocks.NewMockGateway(t)
	store := memoryrepo.NewStore()
	core, logs := observer.New(zapcore.WarnLevel)
	svc := NewPersistenceService(gateway, store, fixedClock{now: saveTestTime}, zap.New(core))
	svc.newID = func() string { return "rec-1" }

	remoteErr := &domain.GatewayError{Op: "save assessment", StatusCode: 503, Err: domain.ErrGatewayError}
	gateway.EXPECT().SaveAssessment(mockAnyContext(), "s-1", mock.Anything).Return(remoteErr).Once()

	var events []SavedEvent
	svc.Subscribe(func(e SavedEvent) { events = append(events, e) })

	assessment := domain.Assessment{Urgency: domain.UrgencyUrgent, Reasoning: "migraine"}
	outcome, err := svc.Save(context.Background(), SaveRequest{
		SessionID:  "s-1",
		Patient:    domain.PatientInfo{Age: 34, Sex: domain.SexFemale},
		Assessment: assessment,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.TierLocal, outcome.Tier)
	assert.True(t, outcome.Degraded())
	assert.Equal(t, "rec-1", outcome.RecordID)
	assert.ErrorIs(t, outcome.RemoteErr, domain.ErrGatewayError)

	records, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.SavedAssessmentRecord{
		ID:          "rec-1",
		SessionID:   "s-1",
		Assessment:  assessment,
		Timestamp:   saveTestTime,
		PatientInfo: domain.PatientInfo{Age: 34, Sex: domain.SexFemale},
	}, records[0])

	require.Len(t, events, 1)
	assert.Equal(t, records[0], events[0].Record)

	require.Equal(t, 1, logs.FilterMessage("remote save failed, falling back to local store").Len())
}

func TestPersistenceSaveDoesNotDeduplicate(t *testing.T) {
	gateway := mocks.NewMockGateway(t)
	store := memoryrepo.NewStore()
	svc := NewPersistenceService(gateway, store, nil, nil)

	gateway.EXPECT().SaveAssessment(mockAnyContext(), "s-1", mock.Anything).Return(errors.New("offline")).Twice()

	notified := 0
	svc.Subscribe(func(SavedEvent) { notified++ })

	req := SaveRequest{SessionID: "s-1", Assessment: domain.Assessment{Urgency: domain.UrgencyRoutine}}
	first, err := svc.Save(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Save(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.RecordID, second.RecordID)
	records, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, 2, notified)
}

func TestPersistenceSaveBothTiersFailReturnsPersistenceFailure(t *testing.T) {
	gateway := mocks.NewMockGateway(t)
	store := mocks.NewMockAssessmentStore(t)
	svc := NewPersistenceService(gateway, store, fixedClock{now: saveTestTime}, nil)

	remoteErr := errors.New("remote down")
	localErr := errors.New("quota exceeded")
	gateway.EXPECT().SaveAssessment(mockAnyContext(), "s-1", mock.Anything).Return(remoteErr).Once()
	store.EXPECT().Append(mockAnyContext(), mock.Anything).Return(localErr).Once()

	notified := 0
	svc.Subscribe(func(SavedEvent) { notified++ })

	outcome, err := svc.Save(context.Background(), SaveRequest{SessionID: "s-1"})
	require.ErrorIs(t, err, domain.ErrPersistenceFailure)
	assert.ErrorIs(t, err, remoteErr)
	assert.ErrorIs(t, err, localErr)
	assert.Equal(t, SaveOutcome{}, outcome)
	assert.Zero(t, notified)
}

func TestPersistenceSaveCanceledContextSkipsFallback(t *testing.T) {
	gateway := mocks.NewMockGateway(t)
	store := mocks.NewMockAssessmentStore(t)
	svc := NewPersistenceService(gateway, store, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	gateway.EXPECT().SaveAssessment(mockAnyContext(), "s-1", mock.Anything).RunAndReturn(
		func(context.Context, string, domain.Assessment) error {
			cancel()
			return context.Canceled
		}).Once()

	_, err := svc.Save(ctx, SaveRequest{SessionID: "s-1"})
	require.ErrorIs(t, err, domain.ErrPersistenceFailure)
	assert.ErrorIs(t, err, context.Canceled)
	store.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestPersistenceSaveRequiresSessionID(t *testing.T) {
	svc := NewPersistenceService(mocks.NewMockGateway(t), mocks.NewMockAssessmentStore(t), nil, nil)

	_, err := svc.Save(context.Background(), SaveRequest{SessionID: "  "})
	require.ErrorIs(t, err, domain.ErrValidationRejected)
}

func TestPersistenceUnsubscribeStopsNotifications(t *testing.T) {
	gateway := mocks.NewMockGateway(t)
	svc := NewPersistenceService(gateway, memoryrepo.NewStore(), nil, nil)

	gateway.EXPECT().SaveAssessment(mockAnyContext(), "s-1", mock.Anything).Return(errors.New("offline")).Twice()

	notified := 0
	unsubscribe := svc.Subscribe(func(SavedEvent) { notified++ })

	_, err := svc.Save(context.Background(), SaveRequest{SessionID: "s-1"})
	require.NoError(t, err)
	unsubscribe()
	unsubscribe()
	_, err = svc.Save(context.Background(), SaveRequest{SessionID: "s-1"})
	require.NoError(t, err)

	assert.Equal(t, 1, notified)
}

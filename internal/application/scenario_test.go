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
)

func TestChestPainSessionEscalatesAndSavesLocallyWhenRemoteFails(t *testing.T) {
	gateway := mocks.NewMockGateway(t)
	clock := fixedClock{now: time.Date(2026, 10, 18, 14, 0, 0, 0, time.UTC)}
	store := memoryrepo.NewStore()

	controller := NewSessionController(gateway, clock, nil)
	persistence := NewPersistenceService(gateway, store, clock, nil)
	escalation := NewEscalationService(nil, "", nil)

	profile := domain.PatientProfile{Age: 34, Sex: domain.SexFemale}
	profile.AddAllergy("penicillin")

	gateway.EXPECT().StartSession(mockAnyContext(), mock.MatchedBy(func(p domain.PatientProfile) bool {
		return p.Age == 34 && p.Sex == domain.SexFemale && len(p.Allergies) == 1 && p.Allergies[0] == "penicillin"
	})).Return(domain.Session{ID: "s-chest"}, nil).Once()
	gateway.EXPECT().SendMessage(mockAnyContext(), domain.SymptomMessage{
		SessionID: "s-chest",
		Text:      "chest pain",
		Severity:  9,
		Duration:  "20 minutes",
	}).Return(domain.MessageResult{
		SessionID: "s-chest",
		Assessment: domain.Assessment{
			Urgency:          domain.UrgencyEmergency,
			EmergencyWarning: "Possible cardiac event",
			Recommendations:  []string{"Call emergency services now"},
		},
	}, nil).Once()
	gateway.EXPECT().SaveAssessment(mockAnyContext(), "s-chest", mock.Anything).
		Return(&domain.GatewayError{Op: "save assessment", StatusCode: 500, Err: domain.ErrGatewayError}).Once()

	require.NoError(t, controller.BeginProfile())
	session, err := controller.Start(context.Background(), profile)
	require.NoError(t, err)

	reply, err := controller.Submit(context.Background(), "chest pain", 9, "20 minutes")
	require.NoError(t, err)

	ledger, ok := controller.Ledger()
	require.True(t, ok)
	assert.Equal(t, 2, ledger.Len())

	require.NotNil(t, reply.Assessment)
	panel, visible := escalation.Panel(*reply.Assessment)
	require.True(t, visible)
	assert.Equal(t, "Possible cardiac event", panel.Warning)
	assert.Equal(t, "911", panel.Number)

	outcome, err := persistence.Save(context.Background(), SaveRequest{
		SessionID:  session.ID,
		Patient:    session.Patient.Summary(),
		Assessment: *reply.Assessment,
	})
	require.NoError(t, err)
	assert.True(t, outcome.Degraded())
	assert.True(t, errors.Is(outcome.RemoteErr, domain.ErrGatewayError))

	records, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "s-chest", records[0].SessionID)
	assert.Equal(t, domain.PatientInfo{Age: 34, Sex: domain.SexFemale}, records[0].PatientInfo)
	assert.Equal(t, domain.UrgencyEmergency, records[0].Assessment.Urgency)
}

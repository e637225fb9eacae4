package chat

import (
	"strings"
	"testing"
	"time"

	"github.com/bnema/symcheck/internal/application"
	"github.com/bnema/symcheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func TestRenderTurnsShowsSeverityEchoAndAssessment(t *testing.T) {
	assessment := domain.Assessment{
		Urgency: domain.UrgencyUrgent,
		ProbableConditions: []domain.Condition{
			{Name: "Migraine", Probability: 0.82, Description: "Primary headache", Recommendations: []string{"Rest in a dark room"}},
			{Name: "Tension headache", Probability: 0.35},
		},
		Reasoning:           "Throbbing pain with light sensitivity.",
		Recommendations:     []string{"See a doctor within 24 hours"},
		ClarifyingQuestions: []string{"Any vision changes?"},
		AffectedBodySystems: []string{"neurological"},
		Disclaimer:          "This is not a diagnosis.",
	}

	output, err := RenderTurns([]domain.ConversationTurn{
		{ID: 1, Role: domain.RoleUser, Content: "headache", Severity: intPtr(6)},
		{ID: 2, Role: domain.RoleAssistant, Content: assessment.Reasoning, Assessment: &assessment},
	})
	require.NoError(t, err)

	assert.Contains(t, output, "You")
	assert.Contains(t, output, "(severity 6/10, high)")
	assert.Contains(t, output, "headache")
	assert.Contains(t, output, "URGENT")
	assert.Contains(t, output, "Probable Conditions")
	assert.Contains(t, output, "Migraine")
	assert.Contains(t, output, "82% confidence")
	assert.Contains(t, output, "35% confidence")
	assert.Contains(t, output, "Rest in a dark room")
	assert.Contains(t, output, "Follow-up Questions")
	assert.Contains(t, output, "Any vision changes?")
	assert.Contains(t, output, "neurological")
	assert.Contains(t, output, "This is not a diagnosis.")
}

func TestRenderTurnsEmpty(t *testing.T) {
	output, err := RenderTurns(nil)
	require.NoError(t, err)
	assert.Contains(t, output, "No messages yet.")
}

func TestRenderTurnApology(t *testing.T) {
	output, err := RenderTurn(domain.ConversationTurn{Role: domain.RoleAssistant, Content: application.ApologyMessage})
	require.NoError(t, err)
	assert.Contains(t, output, "Assistant")
	assert.Contains(t, output, application.ApologyMessage)
}

func TestRenderTurnUnknownUrgencyRendersAsRoutine(t *testing.T) {
	output, err := RenderTurn(domain.ConversationTurn{
		Role:       domain.RoleAssistant,
		Assessment: &domain.Assessment{Urgency: "catastrophic"},
	})
	require.NoError(t, err)
	assert.Contains(t, output, "ROUTINE")
	assert.NotContains(t, output, "CATASTROPHIC")
}

func TestRenderEmergencyPanel(t *testing.T) {
	output, err := RenderEmergencyPanel(application.EmergencyPanel{
		Warning:         "Possible cardiac event",
		Recommendations: []string{"Chew an aspirin if not allergic"},
		Number:          "911",
	})
	require.NoError(t, err)

	assert.Contains(t, output, "MEDICAL EMERGENCY DETECTED")
	assert.Contains(t, output, "Possible cardiac event")
	assert.Contains(t, output, "Call 911 immediately")
	assert.Contains(t, output, "Immediate Actions")
	assert.Contains(t, output, "Chew an aspirin if not allergic")
	assert.Contains(t, output, "/call")
}

func TestRenderSaved(t *testing.T) {
	output, err := RenderSaved([]domain.SavedAssessmentRecord{
		{
			ID:          "rec-1",
			SessionID:   "s-chest",
			Timestamp:   time.Date(2026, 10, 18, 14, 5, 0, 0, time.UTC),
			PatientInfo: domain.PatientInfo{Age: 34, Sex: domain.SexFemale},
			Assessment: domain.Assessment{
				Urgency:            domain.UrgencyEmergency,
				EmergencyWarning:   "Possible cardiac event",
				ProbableConditions: []domain.Condition{{Name: "Angina", Probability: 0.72}},
			},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, output, "records: 1")
	assert.Contains(t, output, "Oct 18, 2026 14:05")
	assert.Contains(t, output, "EMERGENCY")
	assert.Contains(t, output, "session: s-chest")
	assert.Contains(t, output, "patient: 34, female")
	assert.Contains(t, output, "top condition: Angina (72%)")
	assert.Contains(t, output, "Possible cardiac event")
}

func TestRenderSavedEmpty(t *testing.T) {
	output, err := RenderSaved(nil)
	require.NoError(t, err)
	assert.Contains(t, output, "No saved assessments yet.")
}

func TestRenderHistory(t *testing.T) {
	output, err := RenderHistory(domain.ConversationHistory{
		SessionID:  "s-1",
		TotalTurns: 1,
		CreatedAt:  time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC),
		Turns: []domain.HistoryTurn{{
			UserMessage:       "sore throat",
			SeverityReported:  intPtr(3),
			AssistantResponse: domain.Assessment{Urgency: domain.UrgencyRoutine, Reasoning: "Likely viral."},
		}},
	})
	require.NoError(t, err)

	assert.Contains(t, output, "Conversation s-1")
	assert.Contains(t, output, "turns: 1")
	assert.Contains(t, output, "updated: unknown")
	assert.Contains(t, output, "(severity 3/10, low)")
	assert.Contains(t, output, "Assessment (turn 1)")
	assert.Contains(t, output, "Likely viral.")
}

func TestRenderTurnsShowsEmergencyWarning(t *testing.T) {
	output, err := RenderTurns([]domain.ConversationTurn{
		{ID: 1, Role: domain.RoleUser, Content: "chest pain", Severity: intPtr(9)},
		{ID: 2, Role: domain.RoleAssistant, Content: "r", Assessment: &domain.Assessment{
			Urgency:          domain.UrgencyEmergency,
			EmergencyWarning: "Possible cardiac event",
			Reasoning:        "r",
		}},
	})
	require.NoError(t, err)

	assert.Contains(t, output, "EMERGENCY")
	assert.Contains(t, output, "Possible cardiac event")
	assert.Less(t, strings.Index(output, "EMERGENCY"), strings.Index(output, "Possible cardiac event"))
}

func TestRenderHistoryShowsEmergencyWarningWithDefault(t *testing.T) {
	output, err := RenderHistory(domain.ConversationHistory{
		SessionID:  "s-chest",
		TotalTurns: 2,
		Turns: []domain.HistoryTurn{
			{
				UserMessage:       "chest pain",
				AssistantResponse: domain.Assessment{Urgency: domain.UrgencyEmergency, EmergencyWarning: "Possible cardiac event"},
			},
			{
				UserMessage:       "now my arm hurts",
				AssistantResponse: domain.Assessment{Urgency: "EMERGENCY"},
			},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, output, "Possible cardiac event")
	assert.Contains(t, output, domain.DefaultEmergencyWarning)
}

func TestRenderTurnRoutineHasNoEmergencyWarning(t *testing.T) {
	output, err := RenderTurn(domain.ConversationTurn{
		Role:       domain.RoleAssistant,
		Assessment: &domain.Assessment{Urgency: domain.UrgencyRoutine, EmergencyWarning: "stale warning"},
	})
	require.NoError(t, err)
	assert.NotContains(t, output, "stale warning")
}

func TestRenderHealth(t *testing.T) {
	output, err := RenderHealth(domain.HealthStatus{
		Status:   "healthy",
		Services: map[string]string{"llm": "ok", "database": "ok"},
	})
	require.NoError(t, err)

	assert.Contains(t, output, "Gateway: healthy")
	assert.Less(t, strings.Index(output, "database"), strings.Index(output, "llm"))
}

func TestRenderSaveOutcome(t *testing.T) {
	remote, err := RenderSaveOutcome(application.SaveOutcome{Tier: domain.TierRemote})
	require.NoError(t, err)
	assert.Contains(t, remote, "Assessment saved.")

	local, err := RenderSaveOutcome(application.SaveOutcome{Tier: domain.TierLocal, RecordID: "rec-9"})
	require.NoError(t, err)
	assert.Contains(t, local, "saved locally")
	assert.Contains(t, local, "rec-9")
}

package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/symcheck/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestClient(t *testing.T, router http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	client := NewClient(server.URL, 0, nil)
	client.HTTPClient = server.Client()
	return client
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestStartSessionSendsProfileAndParsesSession(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Post("/api/symptom/start", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(34), body["age"])
		assert.Equal(t, "female", body["sex"])
		assert.Equal(t, []any{"penicillin"}, body["allergies"])
		assert.Equal(t, []any{}, body["medications"])

		writeJSON(w, http.StatusOK, `{"session_id":"s-42","message":"Session started","created_at":"2026-10-18T09:00:00.123456"}`)
	})
	client := newTestClient(t, router)

	session, err := client.StartSession(context.Background(), domain.PatientProfile{
		Age:       34,
		Sex:       domain.SexFemale,
		Allergies: []string{"penicillin"},
	})
	require.NoError(t, err)
	assert.Equal(t, "s-42", session.ID)
	assert.Equal(t, "Session started", session.Message)
	assert.Equal(t, time.Date(2026, 10, 18, 9, 0, 0, 123456000, time.UTC), session.CreatedAt)
	assert.Equal(t, 34, session.Patient.Age)
}

func TestStartSessionMissingSessionIDIsGatewayError(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Post("/api/symptom/start", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"message":"Session started"}`)
	})
	client := newTestClient(t, router)

	_, err := client.StartSession(context.Background(), domain.PatientProfile{Age: 34, Sex: domain.SexFemale})
	require.ErrorIs(t, err, domain.ErrGatewayError)
	assert.Contains(t, err.Error(), "session_id")
}

func TestSendMessageParsesAssessment(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Post("/api/symptom/message", func(w http.ResponseWriter, r *http.Request) {
		var body messageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, messageRequest{SessionID: "s-1", Message: "chest pain", Severity: 9, Duration: "20 minutes"}, body)

		writeJSON(w, http.StatusOK, `{
			"session_id": "s-1",
			"conversation_turn": 1,
			"timestamp": "2026-10-18T09:01:00Z",
			"assessment": {
				"urgency": "EMERGENCY",
				"emergency_warning": "Possible cardiac event",
				"probable_conditions": [{"name": "Angina", "probability": 0.72, "description": "Reduced blood flow", "urgency_level": "emergency", "recommendations": ["Call 911"]}],
				"clarifying_questions": ["Does the pain radiate?"],
				"reasoning": "Severe chest pain.",
				"recommendations": ["Call emergency services"],
				"body_systems_affected": ["cardiovascular"],
				"disclaimer": "Not a diagnosis."
			}
		}`)
	})
	client := newTestClient(t, router)

	result, err := client.SendMessage(context.Background(), domain.SymptomMessage{
		SessionID: "s-1",
		Text:      "chest pain",
		Severity:  9,
		Duration:  "20 minutes",
	})
	require.NoError(t, err)

	assert.Equal(t, "s-1", result.SessionID)
	assert.Equal(t, 1, result.ConversationTurn)
	assert.Equal(t, time.Date(2026, 10, 18, 9, 1, 0, 0, time.UTC), result.Timestamp)
	assert.Equal(t, domain.Assessment{
		Urgency:          domain.UrgencyEmergency,
		EmergencyWarning: "Possible cardiac event",
		ProbableConditions: []domain.Condition{{
			Name:            "Angina",
			Probability:     0.72,
			Description:     "Reduced blood flow",
			UrgencyLevel:    "emergency",
			Recommendations: []string{"Call 911"},
		}},
		ClarifyingQuestions: []string{"Does the pain radiate?"},
		Reasoning:           "Severe chest pain.",
		Recommendations:     []string{"Call emergency services"},
		AffectedBodySystems: []string{"cardiovascular"},
		Disclaimer:          "Not a diagnosis.",
	}, result.Assessment)
}

func TestSendMessageMissingAssessmentIsGatewayError(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Post("/api/symptom/message", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"session_id":"s-1"}`)
	})
	client := newTestClient(t, router)

	_, err := client.SendMessage(context.Background(), domain.SymptomMessage{SessionID: "s-1", Text: "cough", Severity: 2})
	require.ErrorIs(t, err, domain.ErrGatewayError)
}

func TestGatewayErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		want        error
		wantMessage string
	}{
		{name: "bad request", status: http.StatusBadRequest, body: `{"detail":"age out of range"}`, want: domain.ErrValidationRejected, wantMessage: "age out of range"},
		{name: "unprocessable list detail", status: http.StatusUnprocessableEntity, body: `{"detail":[{"loc":["body","age"],"msg":"ensure this value is less than 151"}]}`, want: domain.ErrValidationRejected, wantMessage: "ensure this value is less than 151"},
		{name: "server error", status: http.StatusInternalServerError, body: `{"detail":"llm unavailable"}`, want: domain.ErrGatewayError, wantMessage: "llm unavailable"},
		{name: "not found without body", status: http.StatusNotFound, body: ``, want: domain.ErrGatewayError},
		{name: "undecodable success body", status: http.StatusOK, body: `<html>`, want: domain.ErrGatewayError, wantMessage: "decode response"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router := chi.NewRouter()
			router.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tc.status, tc.body)
			})
			client := newTestClient(t, router)

			_, err := client.Health(context.Background())
			require.ErrorIs(t, err, tc.want)

			var gwErr *domain.GatewayError
			require.True(t, errors.As(err, &gwErr))
			assert.Equal(t, "health", gwErr.Op)
			if tc.wantMessage != "" {
				assert.Contains(t, gwErr.Message, tc.wantMessage)
			}
		})
	}
}

func TestUnreachableGatewayIsUnreachable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client := NewClient(baseURL, time.Second, nil)
	_, err := client.Health(context.Background())
	require.ErrorIs(t, err, domain.ErrGatewayUnreachable)
}

func TestRequestTimeoutIsUnreachable(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Post("/api/history/save", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(200 * time.Millisecond):
		case <-r.Context().Done():
		}
		w.WriteHeader(http.StatusOK)
	})
	client := newTestClient(t, router)
	client.RequestTimeout = 20 * time.Millisecond

	err := client.SaveAssessment(context.Background(), "s-1", domain.Assessment{Urgency: domain.UrgencyRoutine})
	require.ErrorIs(t, err, domain.ErrGatewayUnreachable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSaveAssessmentPostsPayload(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Post("/api/history/save", func(w http.ResponseWriter, r *http.Request) {
		var body saveRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "s-1", body.SessionID)
		assert.Equal(t, "urgent", body.Assessment.Urgency)
		assert.Equal(t, []string{"rest"}, body.Assessment.Recommendations)
		assert.Equal(t, []string{}, body.Assessment.ClarifyingQuestions)
		writeJSON(w, http.StatusOK, `{"status":"saved"}`)
	})
	client := newTestClient(t, router)

	err := client.SaveAssessment(context.Background(), "s-1", domain.Assessment{
		Urgency:         domain.UrgencyUrgent,
		Recommendations: []string{"rest"},
	})
	require.NoError(t, err)
}

func TestSaveAssessmentRequiresSessionID(t *testing.T) {
	t.Parallel()

	client := NewClient("http://127.0.0.1:1", 0, nil)
	err := client.SaveAssessment(context.Background(), " ", domain.Assessment{})
	require.ErrorIs(t, err, domain.ErrValidationRejected)
}

func TestHealthParsesServices(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"status":"healthy","services":{"database":"ok","rag":"ok","llm":"degraded"}}`)
	})
	client := newTestClient(t, router)

	status, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Healthy())
	assert.Equal(t, "degraded", status.Services["llm"])
}

func TestHistoryParsesTurns(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Get("/api/history/{sessionID}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "s-1", chi.URLParam(r, "sessionID"))
		writeJSON(w, http.StatusOK, `{
			"session_id": "s-1",
			"turns": [{
				"user_message": "headache",
				"assistant_response": {"urgency": "routine", "reasoning": "tension"},
				"timestamp": "2026-10-18T09:05:00+02:00",
				"severity_reported": 4
			}],
			"created_at": "2026-10-18T09:00:00",
			"last_updated": "2026-10-18T09:05:00"
		}`)
	})
	client := newTestClient(t, router)

	history, err := client.History(context.Background(), "s-1")
	require.NoError(t, err)

	assert.Equal(t, "s-1", history.SessionID)
	assert.Equal(t, 1, history.TotalTurns)
	require.Len(t, history.Turns, 1)
	turn := history.Turns[0]
	assert.Equal(t, "headache", turn.UserMessage)
	assert.Equal(t, domain.UrgencyRoutine, turn.AssistantResponse.Urgency)
	assert.Equal(t, time.Date(2026, 10, 18, 7, 5, 0, 0, time.UTC), turn.Timestamp)
	require.NotNil(t, turn.SeverityReported)
	assert.Equal(t, 4, *turn.SeverityReported)
	assert.Equal(t, time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC), history.CreatedAt)
}

func TestExportReturnsRawBody(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Post("/api/history/export", func(w http.ResponseWriter, r *http.Request) {
		var body exportRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, exportRequest{SessionID: "s-1", Format: "text"}, body)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("Turn 1: headache"))
	})
	client := newTestClient(t, router)

	out, err := client.Export(context.Background(), "s-1", domain.ExportFormatText)
	require.NoError(t, err)
	assert.Equal(t, "Turn 1: headache", string(out))

	_, err = client.Export(context.Background(), "s-1", domain.ExportFormat("pdf"))
	require.ErrorIs(t, err, domain.ErrUnknownExportFormat)
}

func TestRequestsAreLogged(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"status":"ok"}`)
	})
	client := newTestClient(t, router)
	core, logs := observer.New(zapcore.DebugLevel)
	client.Logger = zap.New(core)

	_, err := client.Health(context.Background())
	require.NoError(t, err)

	entries := logs.FilterMessage("gateway response").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/api/health", fields["path"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
}

func TestBuildAPIURLRejectsBadBase(t *testing.T) {
	t.Parallel()

	for _, base := range []string{"", "ftp://example.com", "http://"} {
		_, err := buildAPIURL(base, healthPath)
		require.Error(t, err, base)
	}

	client := NewClient("ftp://example.com", 0, nil)
	_, err := client.Health(context.Background())
	require.ErrorIs(t, err, domain.ErrGatewayError)
}

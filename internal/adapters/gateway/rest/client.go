package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/symcheck/internal/domain"
	"github.com/bnema/symcheck/internal/ports"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL        = "http://localhost:8000"
	DefaultRequestTimeout = 30 * time.Second

	maxResponseBytes = 1 << 20
)

const (
	healthPath       = "/api/health"
	startSessionPath = "/api/symptom/start"
	sendMessagePath  = "/api/symptom/message"
	historyPath      = "/api/history/"
	exportPath       = "/api/history/export"
	savePath         = "/api/history/save"
)

// Client talks JSON to the remote assessment gateway.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Logger         *zap.Logger
}

var _ ports.Gateway = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{BaseURL: baseURL, RequestTimeout: timeout, Logger: logger}
}

func (c *Client) StartSession(ctx context.Context, profile domain.PatientProfile) (domain.Session, error) {
	const op = "start session"

	var payload sessionResponse
	if err := c.doJSON(ctx, op, http.MethodPost, startSessionPath, toSessionRequest(profile), &payload); err != nil {
		return domain.Session{}, err
	}
	if strings.TrimSpace(payload.SessionID) == "" {
		return domain.Session{}, &domain.GatewayError{Op: op, Message: "response missing session_id", Err: domain.ErrGatewayError}
	}

	return domain.Session{
		ID:        payload.SessionID,
		Patient:   profile.Clone(),
		Message:   payload.Message,
		CreatedAt: parseTimestamp(payload.CreatedAt),
	}, nil
}

func (c *Client) SendMessage(ctx context.Context, msg domain.SymptomMessage) (domain.MessageResult, error) {
	const op = "send message"

	req := messageRequest{
		SessionID: msg.SessionID,
		Message:   msg.Text,
		Severity:  msg.Severity,
		Duration:  msg.Duration,
	}

	var payload messageResponse
	if err := c.doJSON(ctx, op, http.MethodPost, sendMessagePath, req, &payload); err != nil {
		return domain.MessageResult{}, err
	}
	if payload.Assessment == nil {
		return domain.MessageResult{}, &domain.GatewayError{Op: op, Message: "response missing assessment", Err: domain.ErrGatewayError}
	}

	sessionID := payload.SessionID
	if sessionID == "" {
		sessionID = msg.SessionID
	}

	return domain.MessageResult{
		SessionID:        sessionID,
		Assessment:       payload.Assessment.toDomain(),
		ConversationTurn: payload.ConversationTurn,
		Timestamp:        parseTimestamp(payload.Timestamp),
	}, nil
}

func (c *Client) SaveAssessment(ctx context.Context, sessionID string, assessment domain.Assessment) error {
	const op = "save assessment"

	if strings.TrimSpace(sessionID) == "" {
		return fmt.Errorf("%s: %w: session id is required", op, domain.ErrValidationRejected)
	}

	req := saveRequest{SessionID: sessionID, Assessment: toAssessmentPayload(assessment)}
	_, err := c.do(ctx, op, http.MethodPost, savePath, req)
	return err
}

func (c *Client) Health(ctx context.Context) (domain.HealthStatus, error) {
	var payload healthResponse
	if err := c.doJSON(ctx, "health", http.MethodGet, healthPath, nil, &payload); err != nil {
		return domain.HealthStatus{}, err
	}

	return domain.HealthStatus{Status: payload.Status, Services: payload.Services}, nil
}

func (c *Client) History(ctx context.Context, sessionID string) (domain.ConversationHistory, error) {
	const op = "history"

	if strings.TrimSpace(sessionID) == "" {
		return domain.ConversationHistory{}, fmt.Errorf("%s: %w: session id is required", op, domain.ErrValidationRejected)
	}

	var payload historyResponse
	if err := c.doJSON(ctx, op, http.MethodGet, historyPath+url.PathEscape(sessionID), nil, &payload); err != nil {
		return domain.ConversationHistory{}, err
	}

	history := payload.toDomain()
	if history.SessionID == "" {
		history.SessionID = sessionID
	}
	return history, nil
}

// Export returns the gateway's rendering of the conversation untouched.
func (c *Client) Export(ctx context.Context, sessionID string, format domain.ExportFormat) ([]byte, error) {
	const op = "export"

	if strings.TrimSpace(sessionID) == "" {
		return nil, fmt.Errorf("%s: %w: session id is required", op, domain.ErrValidationRejected)
	}
	if _, err := domain.ParseExportFormat(string(format)); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c.do(ctx, op, http.MethodPost, exportPath, exportRequest{SessionID: sessionID, Format: string(format)})
}

func (c *Client) doJSON(ctx context.Context, op, method, path string, body any, out any) error {
	raw, err := c.do(ctx, op, method, path, body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &domain.GatewayError{Op: op, Message: "decode response: " + err.Error(), Err: domain.ErrGatewayError}
	}
	return nil
}

func (c *Client) do(ctx context.Context, op, method, path string, body any) ([]byte, error) {
	endpoint, err := buildAPIURL(c.BaseURL, path)
	if err != nil {
		return nil, &domain.GatewayError{Op: op, Message: err.Error(), Err: domain.ErrGatewayError}
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(encoded)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger := c.logger().With(zap.String("op", op), zap.String("method", method), zap.String("path", path))
	started := time.Now()

	resp, err := c.httpClient().Do(req)
	if err != nil {
		logger.Warn("gateway request failed", zap.Duration("duration", time.Since(started)), zap.Error(err))
		return nil, &domain.GatewayError{Op: op, Message: err.Error(), Err: fmt.Errorf("%w: %w", domain.ErrGatewayUnreachable, err)}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		logger.Warn("gateway response read failed", zap.Int("status", resp.StatusCode), zap.Error(err))
		return nil, &domain.GatewayError{Op: op, StatusCode: resp.StatusCode, Message: err.Error(), Err: fmt.Errorf("%w: %w", domain.ErrGatewayUnreachable, err)}
	}

	logger.Debug("gateway response",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(started)),
		zap.Int("bytes", len(raw)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, statusError(op, resp.StatusCode, raw)
	}

	return raw, nil
}

func statusError(op string, statusCode int, raw []byte) error {
	var payload errorResponse
	message := ""
	if err := json.Unmarshal(raw, &payload); err == nil {
		message = payload.message()
	}

	sentinel := domain.ErrGatewayError
	if statusCode == http.StatusBadRequest || statusCode == http.StatusUnprocessableEntity {
		sentinel = domain.ErrValidationRejected
	}

	return &domain.GatewayError{Op: op, StatusCode: statusCode, Message: message, Err: sentinel}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop()
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("gateway base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse gateway base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("gateway base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("gateway base url host is required")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse gateway path: %w", err)
	}
	return endpoint.String(), nil
}

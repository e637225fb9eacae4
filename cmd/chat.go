package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	profileyaml "github.com/bnema/symcheck/internal/adapters/profile/yaml"
	"github.com/bnema/symcheck/internal/adapters/render/chat"
	"github.com/bnema/symcheck/internal/application"
	"github.com/bnema/symcheck/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const chatHelp = `Type a symptom description and press enter.
Commands:
  /severity N   set severity (1-10) for the next messages
  /duration D   set how long the symptoms have lasted ("" clears it)
  /save         save the latest assessment
  /call         contact emergency services
  /history      show the conversation so far
  /help         show this help
  /quit         end the session`

type chatOptions struct {
	age            int
	sex            string
	medicalHistory []string
	medications    []string
	allergies      []string
	profilePath    string
	severity       int
	duration       string
}

func newChatCmd(app *app) *cobra.Command {
	opts := chatOptions{}

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start a symptom assessment session",
		Long:  "Start a session with the given patient profile, then describe symptoms line by line. Emergencies are flagged with a call-for-help panel.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := buildProfile(cmd, opts)
			if err != nil {
				return err
			}

			return runChat(cmd, app, profile, opts)
		},
	}

	cmd.Flags().IntVar(&opts.age, "age", 0, "Patient age in years (1-150)")
	cmd.Flags().StringVar(&opts.sex, "sex", "", "Patient sex: male, female or other")
	cmd.Flags().StringArrayVar(&opts.medicalHistory, "history", nil, "Medical history entry (repeatable)")
	cmd.Flags().StringArrayVar(&opts.medications, "medication", nil, "Current medication (repeatable)")
	cmd.Flags().StringArrayVar(&opts.allergies, "allergy", nil, "Known allergy (repeatable)")
	cmd.Flags().StringVar(&opts.profilePath, "profile", "", "YAML patient profile file; flags override its fields")
	cmd.Flags().IntVar(&opts.severity, "severity", domain.DefaultSeverity, "Initial severity for symptom messages (1-10)")
	cmd.Flags().StringVar(&opts.duration, "duration", "", "Initial symptom duration, e.g. \"2 days\"")

	return cmd
}

func buildProfile(cmd *cobra.Command, opts chatOptions) (domain.PatientProfile, error) {
	var profile domain.PatientProfile
	if opts.profilePath != "" {
		loaded, err := profileyaml.Load(opts.profilePath)
		if err != nil {
			return domain.PatientProfile{}, err
		}
		profile = loaded
	}

	if cmd.Flags().Changed("age") || opts.profilePath == "" {
		profile.Age = opts.age
	}
	if cmd.Flags().Changed("sex") || opts.profilePath == "" {
		sex, err := domain.ParseSex(opts.sex)
		if err != nil {
			return domain.PatientProfile{}, err
		}
		profile.Sex = sex
	}
	for _, item := range opts.medicalHistory {
		profile.AddMedicalHistory(item)
	}
	for _, item := range opts.medications {
		profile.AddMedication(item)
	}
	for _, item := range opts.allergies {
		profile.AddAllergy(item)
	}

	return profile, nil
}

// chatSession holds the per-run state of the interactive loop.
type chatSession struct {
	cmd        *cobra.Command
	app        *app
	controller *application.SessionController
	escalation *application.EscalationService
	severity   int
	duration   string

	mu       sync.Mutex
	appended []domain.ConversationTurn
	notices  []string
}

func runChat(cmd *cobra.Command, app *app, profile domain.PatientProfile, opts chatOptions) error {
	if opts.severity < domain.MinSeverity || opts.severity > domain.MaxSeverity {
		return fmt.Errorf("%w: severity must be between %d and %d", domain.ErrValidationRejected, domain.MinSeverity, domain.MaxSeverity)
	}

	escalation, err := app.newEscalationService(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	s := &chatSession{
		cmd:        cmd,
		app:        app,
		controller: app.newSessionController(),
		escalation: escalation,
		severity:   opts.severity,
		duration:   opts.duration,
	}

	if err := s.controller.BeginProfile(); err != nil {
		return err
	}

	var session domain.Session
	start := func(ctx context.Context) error {
		var err error
		session, err = s.controller.Start(ctx, profile)
		return err
	}
	if err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), plainTask("Starting session..."), start); err != nil {
		if errors.Is(err, domain.ErrGatewayUnreachable) {
			return fmt.Errorf("%w (is the gateway at %s running?)", err, app.config.GatewayURL)
		}
		return err
	}
	defer s.controller.End()

	ledger, ok := s.controller.Ledger()
	if !ok {
		return domain.ErrNoActiveSession
	}
	unsubscribe := ledger.Subscribe(s.collect)
	defer unsubscribe()
	unsubscribeSaved := app.persistence.Subscribe(s.savedLocally)
	defer unsubscribeSaved()

	s.printf("Session %s started for %s.\n", session.ID, describePatient(session.Patient.Summary()))
	s.println(chatHelp)

	return s.loop(cmd.InOrStdin())
}

func (s *chatSession) loop(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		s.printf("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "/") {
			quit, err := s.command(line)
			if err != nil {
				return err
			}
			if quit {
				break
			}
			continue
		}

		if err := s.submit(line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	s.println("\nSession ended.")
	return nil
}

// command handles one slash command; it reports true when the session should end.
func (s *chatSession) command(line string) (bool, error) {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(name) {
	case "/quit", "/exit":
		return true, nil
	case "/help":
		s.println(chatHelp)
	case "/severity":
		severity, err := strconv.Atoi(arg)
		if err != nil || severity < domain.MinSeverity || severity > domain.MaxSeverity {
			s.printf("Severity must be a number between %d and %d.\n", domain.MinSeverity, domain.MaxSeverity)
			return false, nil
		}
		s.severity = severity
		s.printf("Severity set to %d.\n", severity)
	case "/duration":
		s.duration = strings.Trim(arg, `"`)
		if s.duration == "" {
			s.println("Duration cleared.")
		} else {
			s.printf("Duration set to %s.\n", s.duration)
		}
	case "/save":
		return false, s.save()
	case "/call":
		s.call()
	case "/history":
		ledger, ok := s.controller.Ledger()
		if !ok {
			return false, domain.ErrNoActiveSession
		}
		rendered, err := chat.RenderTurns(ledger.Turns())
		if err != nil {
			return false, fmt.Errorf("render output: %w", err)
		}
		s.println(rendered)
	default:
		s.printf("Unknown command %s. Type /help for the list.\n", name)
	}

	return false, nil
}

func (s *chatSession) submit(text string) error {
	ledger, ok := s.controller.Ledger()
	if !ok {
		return domain.ErrNoActiveSession
	}
	task := analysisTask(ledger.Len()/2+1, s.severity)

	send := func(ctx context.Context) error {
		_, err := s.controller.Submit(ctx, text, s.severity, s.duration)
		return err
	}

	sendErr := runWithSpinner(s.cmd.Context(), s.cmd.ErrOrStderr(), task, send)
	switch {
	case sendErr == nil:
	case errors.Is(sendErr, domain.ErrValidationRejected):
		s.printf("Message not sent: %v\n", sendErr)
		return nil
	case errors.Is(sendErr, domain.ErrGatewayUnreachable), errors.Is(sendErr, domain.ErrGatewayError):
		s.app.logger.Warn("symptom analysis failed", zap.Error(sendErr))
	default:
		return sendErr
	}

	if err := s.flush(); err != nil {
		return err
	}
	if sendErr != nil {
		s.printf("Failed to send message: %s\n", gatewayCause(sendErr))
	}
	return nil
}

// gatewayCause names the failing gateway answer without the wrapping chain.
func gatewayCause(err error) string {
	var gatewayErr *domain.GatewayError
	if !errors.As(err, &gatewayErr) {
		return err.Error()
	}

	switch {
	case gatewayErr.StatusCode != 0 && gatewayErr.Message != "":
		return fmt.Sprintf("server answered %d (%s)", gatewayErr.StatusCode, gatewayErr.Message)
	case gatewayErr.StatusCode != 0:
		return fmt.Sprintf("server answered %d", gatewayErr.StatusCode)
	case errors.Is(gatewayErr, domain.ErrGatewayUnreachable):
		return "the assessment service could not be reached"
	default:
		return gatewayErr.Error()
	}
}

// collect buffers appended turns so they print after the spinner stops.
func (s *chatSession) collect(turn domain.ConversationTurn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appended = append(s.appended, turn)
}

func (s *chatSession) flush() error {
	s.mu.Lock()
	turns := s.appended
	s.appended = nil
	s.mu.Unlock()

	for _, turn := range turns {
		if turn.Role == domain.RoleUser {
			continue
		}

		rendered, err := chat.RenderTurn(turn)
		if err != nil {
			return fmt.Errorf("render output: %w", err)
		}
		s.println(rendered)

		if turn.Assessment == nil {
			continue
		}
		panel, ok := s.escalation.Panel(*turn.Assessment)
		if !ok {
			continue
		}
		rendered, err = chat.RenderEmergencyPanel(panel)
		if err != nil {
			return fmt.Errorf("render output: %w", err)
		}
		s.println(rendered)
	}

	return nil
}

func (s *chatSession) save() error {
	session, ok := s.controller.Session()
	ledger, hasLedger := s.controller.Ledger()
	if !ok || !hasLedger {
		return domain.ErrNoActiveSession
	}

	assessment, ok := ledger.LatestAssessment()
	if !ok {
		s.println("Nothing to save yet: no assessment has been received.")
		return nil
	}

	outcome, err := s.app.persistence.Save(s.cmd.Context(), application.SaveRequest{
		SessionID:  session.ID,
		Patient:    session.Patient.Summary(),
		Assessment: assessment,
	})
	if err != nil {
		s.printf("Could not save the assessment: %v\n", err)
		return nil
	}

	rendered, err := chat.RenderSaveOutcome(outcome)
	if err != nil {
		return fmt.Errorf("render output: %w", err)
	}
	s.println(rendered)

	s.mu.Lock()
	notices := s.notices
	s.notices = nil
	s.mu.Unlock()
	for _, notice := range notices {
		s.println(notice)
	}
	return nil
}

// savedLocally follows the local store so a degraded save reports how many
// assessments now wait on this machine.
func (s *chatSession) savedLocally(event application.SavedEvent) {
	notice := fmt.Sprintf("Assessment %s is stored on this machine.", event.Record.ID)
	if records, err := s.app.persistence.List(s.cmd.Context()); err == nil {
		notice = fmt.Sprintf("%d assessment(s) now stored locally. Run `symcheck saved list` to review them.", len(records))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, notice)
}

func (s *chatSession) call() {
	if err := s.escalation.CallEmergency(s.cmd.Context()); err != nil {
		s.printf("Could not start the call: %v\nDial %s yourself now.\n", err, s.escalation.Number())
	}
}

func (s *chatSession) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *chatSession) println(text string) {
	_, _ = fmt.Fprintln(s.cmd.OutOrStdout(), text)
}

func describePatient(info domain.PatientInfo) string {
	return fmt.Sprintf("%d, %s", info.Age, info.Sex)
}

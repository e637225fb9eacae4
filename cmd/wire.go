package cmd

import (
	"fmt"
	"io"

	chaindialer "github.com/bnema/symcheck/internal/adapters/dialer/chain"
	consoledialer "github.com/bnema/symcheck/internal/adapters/dialer/console"
	"github.com/bnema/symcheck/internal/adapters/gateway/rest"
	memoryrepo "github.com/bnema/symcheck/internal/adapters/repo/memory"
	tomlrepo "github.com/bnema/symcheck/internal/adapters/repo/toml"
	"github.com/bnema/symcheck/internal/application"
	"github.com/bnema/symcheck/internal/config"
	"github.com/bnema/symcheck/internal/logging"
	"github.com/bnema/symcheck/internal/ports"
	"go.uber.org/zap"
)

type app struct {
	config      config.Config
	logger      *zap.Logger
	gateway     ports.Gateway
	persistence *application.PersistenceService
	clock       ports.Clock
	newDialer   func(out io.Writer) (ports.EmergencyDialer, error)
}

func wireApp() (*app, error) {
	cfg, err := config.Load(config.LoadOptions{})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(logging.Options{Path: cfg.LogPath, Level: cfg.LogLevel})
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	store, err := wireStore(cfg)
	if err != nil {
		return nil, err
	}

	clock := ports.SystemClock{}
	gateway := rest.NewClient(cfg.GatewayURL, cfg.GatewayTimeout, logger.Named("gateway"))

	return &app{
		config:      cfg,
		logger:      logger,
		gateway:     gateway,
		persistence: application.NewPersistenceService(gateway, store, clock, logger.Named("persistence")),
		clock:       clock,
		newDialer: func(out io.Writer) (ports.EmergencyDialer, error) {
			if cfg.EmergencyDialer == config.DialerConsole {
				return consoledialer.NewDialer(out), nil
			}
			return chaindialer.NewTelFirstWithConsoleFallback(out)
		},
	}, nil
}

func wireStore(cfg config.Config) (ports.AssessmentStore, error) {
	if cfg.StoreEphemeral {
		return memoryrepo.NewStore(), nil
	}

	store, err := tomlrepo.NewAssessmentStore(cfg.Viper)
	if err != nil {
		return nil, fmt.Errorf("wire assessment store: %w", err)
	}
	return store, nil
}

func (a *app) newSessionController() *application.SessionController {
	return application.NewSessionController(a.gateway, a.clock, a.logger.Named("session"))
}

func (a *app) newEscalationService(out io.Writer) (*application.EscalationService, error) {
	dialer, err := a.newDialer(out)
	if err != nil {
		return nil, fmt.Errorf("wire emergency dialer: %w", err)
	}
	return application.NewEscalationService(dialer, a.config.EmergencyNumber, a.logger.Named("escalation")), nil
}

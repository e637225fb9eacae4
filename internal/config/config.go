package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	KeyGatewayURL      = "gateway.url"
	KeyGatewayTimeout  = "gateway.timeout"
	KeyStorePath       = "store.path"
	KeyStoreEphemeral  = "store.ephemeral"
	KeyEmergencyNumber = "emergency.number"
	KeyEmergencyDialer = "emergency.dialer"
	KeyLogPath         = "log.path"
	KeyLogLevel        = "log.level"

	EnvPrefix = "SYMCHECK"

	DefaultGatewayURL      = "http://localhost:8000"
	DefaultGatewayTimeout  = 30 * time.Second
	DefaultEmergencyNumber = "911"
	DefaultLogLevel        = "info"

	// DialerSystem opens a tel: URI and falls back to printed instructions;
	// DialerConsole only prints them.
	DialerSystem  = "system"
	DialerConsole = "console"

	configDir  = ".symcheck"
	configName = "config"
	configType = "toml"
)

type Config struct {
	GatewayURL      string
	GatewayTimeout  time.Duration
	StorePath       string
	StoreEphemeral  bool
	EmergencyNumber string
	EmergencyDialer string
	LogPath         string
	LogLevel        string

	// Viper is handed to adapters that resolve their own keys.
	Viper *viper.Viper
}

type LoadOptions struct {
	// HomeDir defaults to the user's home directory.
	HomeDir string
	// EnvFile defaults to .env in the working directory. Missing files are ignored.
	EnvFile string
}

// Load merges defaults, ~/.symcheck/config.toml, a .env file and SYMCHECK_*
// environment variables, later sources winning.
func Load(opts LoadOptions) (Config, error) {
	homeDir := opts.HomeDir
	if homeDir == "" {
		var err error
		homeDir, err = os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
	}

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(filepath.Join(homeDir, configDir))
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyGatewayURL, DefaultGatewayURL)
	v.SetDefault(KeyGatewayTimeout, DefaultGatewayTimeout)
	v.SetDefault(KeyStorePath, filepath.Join(homeDir, configDir, "assessments.toml"))
	v.SetDefault(KeyStoreEphemeral, false)
	v.SetDefault(KeyEmergencyNumber, DefaultEmergencyNumber)
	v.SetDefault(KeyEmergencyDialer, DialerSystem)
	v.SetDefault(KeyLogPath, filepath.Join(homeDir, configDir, "logs", "symcheck.log"))
	v.SetDefault(KeyLogLevel, DefaultLogLevel)

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		GatewayURL:      strings.TrimSpace(v.GetString(KeyGatewayURL)),
		GatewayTimeout:  v.GetDuration(KeyGatewayTimeout),
		StorePath:       strings.TrimSpace(v.GetString(KeyStorePath)),
		StoreEphemeral:  v.GetBool(KeyStoreEphemeral),
		EmergencyNumber: strings.TrimSpace(v.GetString(KeyEmergencyNumber)),
		EmergencyDialer: strings.ToLower(strings.TrimSpace(v.GetString(KeyEmergencyDialer))),
		LogPath:         strings.TrimSpace(v.GetString(KeyLogPath)),
		LogLevel:        strings.TrimSpace(v.GetString(KeyLogLevel)),
		Viper:           v,
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.GatewayURL == "" {
		return fmt.Errorf("%s is empty", KeyGatewayURL)
	}
	if c.GatewayTimeout <= 0 {
		return fmt.Errorf("%s must be positive, got %s", KeyGatewayTimeout, c.GatewayTimeout)
	}
	if c.StorePath == "" {
		return fmt.Errorf("%s is empty", KeyStorePath)
	}
	if c.EmergencyNumber == "" {
		return fmt.Errorf("%s is empty", KeyEmergencyNumber)
	}
	if c.EmergencyDialer != DialerSystem && c.EmergencyDialer != DialerConsole {
		return fmt.Errorf("%s must be %q or %q, got %q", KeyEmergencyDialer, DialerSystem, DialerConsole, c.EmergencyDialer)
	}

	return nil
}

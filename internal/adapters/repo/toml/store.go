package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/symcheck/internal/domain"
	"github.com/bnema/symcheck/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	StorePathKey = "store.path"

	storeFileMode   = 0o600
	storeDirMode    = 0o700
	storeConfigDir  = ".symcheck"
	storeFileName   = "assessments.toml"
	tempFilePattern = ".assessments-*.toml.tmp"
)

// AssessmentStore keeps saved assessments in a single TOML file. Appends are
// read-modify-write under a per-path lock and replace the file atomically.
type AssessmentStore struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.AssessmentStore = (*AssessmentStore)(nil)

func NewAssessmentStore(cfg *viper.Viper) (*AssessmentStore, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	if !cfg.IsSet(StorePathKey) {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		cfg.SetDefault(StorePathKey, defaultPath)
	}

	path := cfg.GetString(StorePathKey)
	if path == "" {
		return nil, errors.New("assessment store path is empty")
	}
	path, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &AssessmentStore{path: path, mu: lockForPath(path)}, nil
}

func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, storeConfigDir, storeFileName), nil
}

func (s *AssessmentStore) Path() string {
	return s.path
}

func (s *AssessmentStore) List(ctx context.Context) ([]domain.SavedAssessmentRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.readSchema()
	if err != nil {
		return nil, err
	}

	records := make([]domain.SavedAssessmentRecord, 0, len(file.SavedAssessments))
	for _, entry := range file.SavedAssessments {
		records = append(records, fromSchema(entry))
	}

	return records, nil
}

func (s *AssessmentStore) Append(ctx context.Context, record domain.SavedAssessmentRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.readSchema()
	if err != nil {
		return err
	}

	file.SavedAssessments = append(file.SavedAssessments, toSchema(record))

	if err := ctx.Err(); err != nil {
		return err
	}

	return s.writeSchema(file)
}

func (s *AssessmentStore) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{Version: currentSchemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("read assessments file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode assessments file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (s *AssessmentStore) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(s.path), storeDirMode); err != nil {
		return fmt.Errorf("create assessments directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode assessments file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp assessments file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp assessments file: %w", err)
	}
	if err := tempFile.Chmod(storeFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp assessments file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp assessments file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace assessments file: %w", err)
	}
	cleanup = false

	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve assessment store path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(record domain.SavedAssessmentRecord) recordSchema {
	a := record.Assessment
	conditions := make([]conditionSchema, 0, len(a.ProbableConditions))
	for _, c := range a.ProbableConditions {
		conditions = append(conditions, conditionSchema{
			Name:            c.Name,
			Probability:     c.Probability,
			Description:     c.Description,
			UrgencyLevel:    c.UrgencyLevel,
			Recommendations: c.Recommendations,
		})
	}

	return recordSchema{
		ID:        record.ID,
		SessionID: record.SessionID,
		Timestamp: formatTime(record.Timestamp),
		PatientInfo: patientInfoSchema{
			Age: record.PatientInfo.Age,
			Sex: string(record.PatientInfo.Sex),
		},
		Assessment: assessmentSchema{
			Urgency:             string(a.Urgency),
			EmergencyWarning:    a.EmergencyWarning,
			Reasoning:           a.Reasoning,
			Disclaimer:          a.Disclaimer,
			Recommendations:     a.Recommendations,
			ClarifyingQuestions: a.ClarifyingQuestions,
			BodySystemsAffected: a.AffectedBodySystems,
			ProbableConditions:  conditions,
		},
	}
}

func fromSchema(entry recordSchema) domain.SavedAssessmentRecord {
	var conditions []domain.Condition
	for _, c := range entry.Assessment.ProbableConditions {
		conditions = append(conditions, domain.Condition{
			Name:            c.Name,
			Probability:     c.Probability,
			Description:     c.Description,
			UrgencyLevel:    c.UrgencyLevel,
			Recommendations: c.Recommendations,
		})
	}

	return domain.SavedAssessmentRecord{
		ID:        entry.ID,
		SessionID: entry.SessionID,
		Timestamp: parseTime(entry.Timestamp),
		PatientInfo: domain.PatientInfo{
			Age: entry.PatientInfo.Age,
			Sex: domain.Sex(entry.PatientInfo.Sex),
		},
		Assessment: domain.Assessment{
			Urgency:             domain.Urgency(entry.Assessment.Urgency),
			EmergencyWarning:    entry.Assessment.EmergencyWarning,
			ProbableConditions:  conditions,
			ClarifyingQuestions: entry.Assessment.ClarifyingQuestions,
			Reasoning:           entry.Assessment.Reasoning,
			Recommendations:     entry.Assessment.Recommendations,
			AffectedBodySystems: entry.Assessment.BodySystemsAffected,
			Disclaimer:          entry.Assessment.Disclaimer,
		},
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339Nano)
}

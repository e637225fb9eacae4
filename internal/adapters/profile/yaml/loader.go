package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bnema/symcheck/internal/domain"
	yaml "gopkg.in/yaml.v3"
)

const maxProfileBytes = 64 << 10

type profileSchema struct {
	Age            int      `yaml:"age"`
	Sex            string   `yaml:"sex"`
	MedicalHistory []string `yaml:"medical_history"`
	Medications    []string `yaml:"medications"`
	Allergies      []string `yaml:"allergies"`
}

// Load reads a patient profile file. Unknown keys are rejected so a typo does
// not silently drop an allergy.
func Load(path string) (domain.PatientProfile, error) {
	file, err := os.Open(path)
	if err != nil {
		return domain.PatientProfile{}, fmt.Errorf("open profile file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(io.LimitReader(file, maxProfileBytes))
}

func Decode(r io.Reader) (domain.PatientProfile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return domain.PatientProfile{}, fmt.Errorf("read profile: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var schema profileSchema
	if err := decoder.Decode(&schema); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.PatientProfile{}, fmt.Errorf("%w: profile is empty", domain.ErrValidationRejected)
		}
		return domain.PatientProfile{}, fmt.Errorf("decode profile: %w", err)
	}

	sex, err := domain.ParseSex(schema.Sex)
	if err != nil {
		return domain.PatientProfile{}, err
	}

	profile := domain.PatientProfile{
		Age:            schema.Age,
		Sex:            sex,
		MedicalHistory: schema.MedicalHistory,
		Medications:    schema.Medications,
		Allergies:      schema.Allergies,
	}
	profile.NormalizeLists()

	if err := profile.Validate(); err != nil {
		return domain.PatientProfile{}, err
	}

	return profile, nil
}

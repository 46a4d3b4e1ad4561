package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mahdiidarabi/ecdsa-weierstrass/pkg/audit"
	"github.com/mahdiidarabi/ecdsa-weierstrass/pkg/ecdsa"
)

// RecordSpec is one signature in a record file. Z may be omitted when
// Message is given; it is then derived with the scheme's hash. An explicit
// empty message is allowed.
type RecordSpec struct {
	Message *string `yaml:"message"`
	Z       Int    `yaml:"z"`
	R       Int    `yaml:"r"`
	S       Int    `yaml:"s"`
}

// RecordFile is the top level of a signature record file.
type RecordFile struct {
	Records []RecordSpec `yaml:"records"`
}

// ParseRecords decodes signature records, filling in missing digests from
// their messages.
func ParseRecords(data []byte, scheme *ecdsa.Scheme) ([]audit.Record, error) {
	var file RecordFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse record file: %w", err)
	}

	records := make([]audit.Record, 0, len(file.Records))
	for i, spec := range file.Records {
		if spec.R.Int == nil || spec.S.Int == nil {
			return nil, fmt.Errorf("record %d: r and s are required", i)
		}

		z := spec.Z.Int
		if z == nil {
			if spec.Message == nil {
				return nil, fmt.Errorf("record %d: either z or message is required", i)
			}
			z = scheme.HashToScalar([]byte(*spec.Message))
		}
		records = append(records, audit.Record{Z: z, R: spec.R.Int, S: spec.S.Int})
	}
	return records, nil
}

// LoadRecords reads a signature record file.
func LoadRecords(path string, scheme *ecdsa.Scheme) ([]audit.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}
	return ParseRecords(data, scheme)
}

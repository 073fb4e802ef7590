// Package testsupport holds fixture and golden helpers shared by package
// tests.
package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-qrform/pkg/mecard"
)

// ContactCase is one entry of a contact fixture file: an input record and the
// payloads it should produce, or the field expected to reject it.
type ContactCase struct {
	Name      string         `yaml:"name"`
	Contact   mecard.Contact `yaml:"contact"`
	MeCard    string         `yaml:"mecard"`
	VCard     string         `yaml:"vcard"`
	RejectsOn string         `yaml:"rejects_on"`
	Message   string         `yaml:"message"`
}

// LoadContactCases reads a YAML list of ContactCase values.
func LoadContactCases(path string) ([]ContactCase, error) {
	if path == "" {
		return nil, errors.New("testsupport: fixture path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read fixture: %w", err)
	}
	var cases []ContactCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("testsupport: unmarshal fixture: %w", err)
	}
	return cases, nil
}

// MustLoadContactCases is LoadContactCases failing the test on error.
func MustLoadContactCases(t *testing.T, path string) []ContactCase {
	t.Helper()

	cases, err := LoadContactCases(path)
	if err != nil {
		t.Fatalf("load contact cases: %v", err)
	}
	return cases
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

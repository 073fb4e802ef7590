package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadContactCases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	body := `
- name: minimal
  contact:
    name: Ada
  mecard: "MECARD:N:Ada;;"
- name: bad phone
  contact:
    name: Ada
    tel: abc
  rejects_on: tel
  message: Phone number must be digits only.
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cases := MustLoadContactCases(t, path)
	if len(cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(cases))
	}
	if cases[0].Contact.Name != "Ada" || cases[0].MeCard != "MECARD:N:Ada;;" {
		t.Fatalf("unexpected first case %+v", cases[0])
	}
	if cases[1].RejectsOn != "tel" || cases[1].Contact.Tel != "abc" {
		t.Fatalf("unexpected second case %+v", cases[1])
	}
}

func TestLoadContactCases_Errors(t *testing.T) {
	if _, err := LoadContactCases(""); err == nil {
		t.Fatal("expected error for empty path")
	}
	if _, err := LoadContactCases(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

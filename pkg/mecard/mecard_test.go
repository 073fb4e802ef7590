package mecard_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-qrform/pkg/mecard"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name    string
		contact mecard.Contact
		want    string
	}{
		{
			name:    "name only keeps double terminator",
			contact: mecard.Contact{Name: "Ada Lovelace"},
			want:    "MECARD:N:Ada Lovelace;;",
		},
		{
			name:    "empty name still emits N",
			contact: mecard.Contact{},
			want:    "MECARD:N:;;",
		},
		{
			name:    "first address line only",
			contact: mecard.Contact{Name: "A", Address: "123 Main"},
			want:    "MECARD:N:A;ADR:123 Main;;",
		},
		{
			name:    "second address line only",
			contact: mecard.Contact{Name: "A", Address2: "Apt 4"},
			want:    "MECARD:N:A;ADR:Apt 4;;",
		},
		{
			name:    "both address lines joined by one space",
			contact: mecard.Contact{Name: "A", Address: "123 Main", Address2: "Apt 4"},
			want:    "MECARD:N:A;ADR:123 Main Apt 4;;",
		},
		{
			name: "all fields in segment order",
			contact: mecard.Contact{
				Name:     "Ada",
				Company:  "Analytical Engines",
				Tel:      "5551234567",
				URL:      "https://example.com",
				Email:    "ada@example.com",
				Address:  "123 Main",
				Address2: "Apt 4",
				Memo:     "met at conf",
			},
			want: "MECARD:N:Ada;ORG:Analytical Engines;TEL:5551234567;URL:https://example.com;" +
				"EMAIL:ada@example.com;ADR:123 Main Apt 4;NOTE:met at conf;;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, mecard.Encode(tt.contact)); diff != "" {
				t.Fatalf("encode mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeVCard(t *testing.T) {
	got := mecard.EncodeVCard(mecard.Contact{
		Name:     "Ada",
		Tel:      "555",
		Address2: "Apt 4",
	})
	want := "BEGIN:VCARD\nN:Ada\nTEL:555\nADR:Apt 4\nEND:VCARD"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("vcard mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatFor(t *testing.T) {
	for in, want := range map[string]mecard.Format{
		"":        mecard.FormatMeCard,
		"MeCard":  mecard.FormatMeCard,
		" vcard ": mecard.FormatVCard,
	} {
		got, err := mecard.FormatFor(in)
		if err != nil {
			t.Fatalf("FormatFor(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("FormatFor(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := mecard.FormatFor("xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestEncodeAs(t *testing.T) {
	out, err := mecard.EncodeAs(mecard.FormatVCard, mecard.Contact{Name: "A"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if out != "BEGIN:VCARD\nN:A\nEND:VCARD" {
		t.Fatalf("unexpected vcard %q", out)
	}
	if _, err := mecard.EncodeAs("bogus", mecard.Contact{}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

// Package mecard serializes contact records into the compact text formats
// barcode encoders consume.
package mecard

import (
	"fmt"
	"strings"
)

// Contact is the record a contact form produces. Values are expected to be
// validated already; Encode does no escaping.
type Contact struct {
	Name     string `json:"name" yaml:"name"`
	Company  string `json:"company,omitempty" yaml:"company"`
	Tel      string `json:"tel,omitempty" yaml:"tel"`
	URL      string `json:"url,omitempty" yaml:"url"`
	Email    string `json:"email,omitempty" yaml:"email"`
	Address  string `json:"address,omitempty" yaml:"address"`
	Address2 string `json:"address2,omitempty" yaml:"address2"`
	Memo     string `json:"memo,omitempty" yaml:"memo"`
}

// Format selects the output encoding.
type Format string

const (
	FormatMeCard Format = "mecard"
	FormatVCard  Format = "vcard"
)

// FormatFor parses a format name. The empty string selects MeCard.
func FormatFor(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatMeCard:
		return FormatMeCard, nil
	case FormatVCard:
		return FormatVCard, nil
	default:
		return "", fmt.Errorf("mecard: unknown format %q", name)
	}
}

// EncodeAs dispatches on format.
func EncodeAs(format Format, c Contact) (string, error) {
	switch format {
	case "", FormatMeCard:
		return Encode(c), nil
	case FormatVCard:
		return EncodeVCard(c), nil
	default:
		return "", fmt.Errorf("mecard: unknown format %q", format)
	}
}

// Encode renders c as MeCard text. The N segment is always present, the
// other segments only when non-empty, and the record ends with an extra ';'
// after the last segment terminator.
func Encode(c Contact) string {
	var out strings.Builder
	out.WriteString("MECARD:")
	out.WriteString("N:")
	out.WriteString(c.Name)
	out.WriteByte(';')
	maybeAppend(&out, "ORG:", c.Company)
	maybeAppend(&out, "TEL:", c.Tel)
	maybeAppend(&out, "URL:", c.URL)
	maybeAppend(&out, "EMAIL:", c.Email)
	if c.Address != "" || c.Address2 != "" {
		out.WriteString("ADR:")
		out.WriteString(joinAddress(c.Address, c.Address2))
		out.WriteByte(';')
	}
	maybeAppend(&out, "NOTE:", c.Memo)
	out.WriteByte(';')
	return out.String()
}

// EncodeVCard renders c as a minimal newline separated vCard.
func EncodeVCard(c Contact) string {
	var out strings.Builder
	out.WriteString("BEGIN:VCARD\n")
	out.WriteString("N:")
	out.WriteString(c.Name)
	out.WriteByte('\n')
	maybeAppendLine(&out, "ORG:", c.Company)
	maybeAppendLine(&out, "TEL:", c.Tel)
	maybeAppendLine(&out, "URL:", c.URL)
	maybeAppendLine(&out, "EMAIL:", c.Email)
	maybeAppendLine(&out, "ADR:", joinAddress(c.Address, c.Address2))
	maybeAppendLine(&out, "NOTE:", c.Memo)
	out.WriteString("END:VCARD")
	return out.String()
}

func joinAddress(line1, line2 string) string {
	switch {
	case line1 != "" && line2 != "":
		return line1 + " " + line2
	case line1 != "":
		return line1
	default:
		return line2
	}
}

func maybeAppend(out *strings.Builder, prefix, value string) {
	if value == "" {
		return
	}
	out.WriteString(prefix)
	out.WriteString(value)
	out.WriteByte(';')
}

func maybeAppendLine(out *strings.Builder, prefix, value string) {
	if value == "" {
		return
	}
	out.WriteString(prefix)
	out.WriteString(value)
	out.WriteByte('\n')
}

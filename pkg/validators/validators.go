// Package validators holds the shape checks shared by generator forms. The
// checks are deliberately loose: they reject input that would corrupt a
// barcode payload, not input that is merely unusual.
package validators

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrNewline      = errors.New("Field must not contain \\n characters.")
	ErrSemicolon    = errors.New("Field must not contains ; characters")
	ErrPhoneDigits  = errors.New("Phone number must be digits only.")
	ErrInvalidURL   = errors.New("URL is not valid.")
	ErrInvalidEmail = errors.New("Email is not valid.")
)

var (
	numberFormatting = regexp.MustCompile(`[ .,\-()]`)
	phonePattern     = regexp.MustCompile(`^\+?[0-9]+$`)
	emailPattern     = regexp.MustCompile(`^(.+)@(.+)$`)
)

// FilterNumber strips the formatting characters people type into phone
// numbers: spaces, dots, commas, dashes and parentheses.
func FilterNumber(number string) string {
	return numberFormatting.ReplaceAllString(number, "")
}

// ValidateNumber accepts an optional leading + followed by digits.
func ValidateNumber(number string) error {
	if !phonePattern.MatchString(number) {
		return ErrPhoneDigits
	}
	return nil
}

// ValidateURL applies a basic URI shape check: no spaces, and either a dot
// followed by at least a two character suffix or a scheme separator.
func ValidateURL(url string) error {
	if !isBasicallyValidURI(url) {
		return ErrInvalidURL
	}
	return nil
}

func isBasicallyValidURI(uri string) bool {
	if strings.Contains(uri, " ") {
		return false
	}
	period := strings.IndexByte(uri, '.')
	return period < len(uri)-2 && (period >= 0 || strings.IndexByte(uri, ':') >= 0)
}

// ValidateEmail requires something on both sides of an @.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidateText rejects the characters MeCard reserves as delimiters. Both
// \n and \r count as line breaks.
func ValidateText(input string) error {
	if strings.ContainsAny(input, "\r\n") {
		return ErrNewline
	}
	if strings.Contains(input, ";") {
		return ErrSemicolon
	}
	return nil
}

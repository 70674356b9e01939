package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a typed date is not a real dd/mm/yyyy date.
var ErrInvalidDate = errors.New("invalid date")

const isoDateLayout = "2006-01-02"

var displayDateRe = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)

// ParseDisplayDate converts a typed dd/mm/yyyy value to the canonical
// yyyy-mm-dd storage form. Blank input yields "" and no error.
func ParseDisplayDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}

	m := displayDateRe.FindStringSubmatch(s)
	if m == nil {
		return "", ErrInvalidDate
	}

	iso := m[3] + "-" + m[2] + "-" + m[1]
	// time.Parse rejects out-of-range days such as 31/02.
	if _, err := time.Parse(isoDateLayout, iso); err != nil {
		return "", ErrInvalidDate
	}
	return iso, nil
}

// FormatDisplayDate converts a canonical date (optionally followed by a
// time part) to dd/mm/yyyy. Malformed input yields "".
func FormatDisplayDate(iso string) string {
	iso = strings.TrimSpace(iso)
	if i := strings.IndexByte(iso, 'T'); i >= 0 {
		iso = iso[:i]
	}
	parts := strings.Split(iso, "-")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return ""
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// CanonicalDate normalizes a stored date (optionally followed by a time
// part) to yyyy-mm-dd, accepting unpadded months and days. ok is false when
// the value is not a real date; the trimmed input is returned then.
func CanonicalDate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	day := raw
	if i := strings.IndexByte(day, 'T'); i >= 0 {
		day = day[:i]
	}
	t, err := time.Parse("2006-1-2", day)
	if err != nil {
		return raw, false
	}
	return t.Format(isoDateLayout), true
}

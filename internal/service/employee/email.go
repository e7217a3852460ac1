package employee

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const emailDomain = "shalom.com"

var stripAccents = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// GenerateEmailFromName derives a login address from a display name.
// Accents are stripped and only letters survive: one word becomes
// word@shalom.com, two or more become first.last@shalom.com. A non-zero id
// is appended as a suffix to disambiguate duplicates.
func GenerateEmailFromName(fullName string, id int64) string {
	local := "unknown"

	if cleaned, _, err := transform.String(stripAccents, fullName); err == nil {
		fullName = cleaned
	}

	var b strings.Builder
	for _, r := range strings.ToLower(fullName) {
		if (r >= 'a' && r <= 'z') || r == ' ' {
			b.WriteRune(r)
		}
	}

	parts := strings.Fields(b.String())
	switch {
	case len(parts) == 1:
		local = parts[0]
	case len(parts) >= 2:
		local = parts[0] + "." + parts[len(parts)-1]
	}

	if id > 0 {
		local = fmt.Sprintf("%s.%d", local, id)
	}

	return local + "@" + emailDomain
}

package booking

import "strings"

// NormalizeName trims, upper-cases and collapses internal whitespace
// runs to single spaces. Idempotent.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToUpper(name)), " ")
}

// NormalizePhone strips everything that is not a digit. Idempotent;
// returns "" when nothing remains.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

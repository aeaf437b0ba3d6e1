package audit

import "strings"

var dashFold = strings.NewReplacer("–", "-", "—", "-")

// Normalize lower-cases, folds en/em dashes to hyphens, and collapses
// whitespace runs to single spaces. Idempotent: normalizing an
// already-normalized string is a no-op.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = dashFold.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

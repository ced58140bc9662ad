package shared

import "strings"

// NilIfEmpty treats a missing or blank optional value as absent.
func NilIfEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

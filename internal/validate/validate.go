package validate

import (
	"regexp"
	"strings"

	"learnhub/internal/domain"
)

var (
	// Display names: CJK, latin letters, digits, underscore; 2-20 runes.
	reName  = regexp.MustCompile(`^[\p{Han}A-Za-z0-9_]{2,20}$`)
	reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reName.MatchString(s)
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 254 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Password enforces only a minimum length.
func Password(s string) bool {
	return len(s) >= 6
}

func Role(s string) bool {
	return s == domain.RoleStudent || s == domain.RoleAdmin
}

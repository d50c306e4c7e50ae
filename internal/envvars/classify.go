package envvars

import (
	"regexp"
	"strings"
)

var sensitivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`password`),
	regexp.MustCompile(`secret`),
	regexp.MustCompile(`key`),
	regexp.MustCompile(`token`),
	regexp.MustCompile(`api.*key`),
	regexp.MustCompile(`private`),
	regexp.MustCompile(`credential`),
	regexp.MustCompile(`auth`),
}

var databasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`database`),
	regexp.MustCompile(`db`),
	regexp.MustCompile(`postgres`),
	regexp.MustCompile(`mysql`),
	regexp.MustCompile(`mongo`),
	regexp.MustCompile(`redis`),
}

var configNames = map[string]bool{
	"debug":       true,
	"environment": true,
	"env":         true,
	"node_env":    true,
}

var requiredNames = map[string]bool{
	"DATABASE_URL":  true,
	"DATABASE_HOST": true,
	"DB_HOST":       true,
	"POSTGRES_HOST": true,
	"REDIS_URL":     true,
	"SECRET_KEY":    true,
	"JWT_SECRET":    true,
}

func matchAny(patterns []*regexp.Regexp, s string) bool {
	for _, p := range patterns {
		if p.MatchString(s) {
			return true
		}
	}

	return false
}

// IsSensitive returns true if the variable name looks like it holds a credential
func IsSensitive(name string) bool {
	return matchAny(sensitivePatterns, strings.ToLower(name))
}

// IsRequired returns true for names a deployment cannot start without
func IsRequired(name string) bool {
	return requiredNames[strings.ToUpper(name)]
}

// Classify assigns a category to a variable name. Sensitivity wins over every other rule.
func Classify(name string) Category {
	lower := strings.ToLower(name)

	switch {
	case IsSensitive(name):
		return CategorySecret
	case matchAny(databasePatterns, lower):
		return CategoryDatabase
	case strings.HasPrefix(lower, "ci_"), strings.HasPrefix(lower, "gitlab_"):
		return CategoryCI
	case configNames[lower]:
		return CategoryConfig
	case strings.HasSuffix(lower, "_url"), strings.HasSuffix(lower, "_endpoint"):
		return CategoryURL
	case strings.HasSuffix(lower, "_port"):
		return CategoryPort
	default:
		return CategoryGeneral
	}
}

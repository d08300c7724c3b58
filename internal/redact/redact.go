// Package redact scrubs sensitive information from strings before they are
// logged. Error messages routinely carry connection strings, tokens and
// emails; redacting at the logging boundary keeps them out of log storage.
package redact

import "regexp"

// Redaction placeholders
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
)

// Precompiled patterns, applied in order. Credentials go first so a
// connection string is scrubbed before the path pattern mangles it.
var patterns = []struct {
	re          *regexp.Regexp
	placeholder string
}{
	// Database connection strings with inline credentials
	{
		regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`),
		RedactedCredentialPlaceholder,
	},
	// password=..., pwd: '...'
	{
		regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]['"]?|['"]?[=:])[^'"&\s]{3,}`),
		RedactedCredentialPlaceholder,
	},
	// JWTs (three base64url segments) before the generic key pattern, which
	// would otherwise swallow "token eyJ..." prefixes
	{
		regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`),
		"[REDACTED_JWT]",
	},
	// API keys, secrets and bearer tokens
	{
		regexp.MustCompile(`(?i)(api[_-]?key|token|secret|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`),
		RedactedKeyPlaceholder,
	},
	// Email addresses
	{
		regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		"[REDACTED_EMAIL]",
	},
	// Filesystem paths
	{
		regexp.MustCompile(`(/[\w.-]+){2,}`),
		RedactedPathPlaceholder,
	},
	// SQL fragments leaked from driver errors
	{
		regexp.MustCompile(
			`(?i)(SELECT|INSERT|UPDATE|DELETE)[\s\w,*()]+(?:FROM|INTO|SET)(?:[\s\w,*()='"]+)?`,
		),
		"[REDACTED_SQL]",
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}
	result := input
	for _, p := range patterns {
		result = p.re.ReplaceAllString(result, p.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

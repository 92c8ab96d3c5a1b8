package logger

import (
	"regexp"
	"strings"
)

// Key patterns considered sensitive (case-insensitive).
var sensitiveKeyPatterns = []string{
	"password",
	"token",
	"api_key",
	"apikey",
	"secret",
	"github_token",
	"authorization",
	"auth",
	"credential",
	"private_key",
	"access_token",
}

// Value patterns considered sensitive.
var sensitiveValuePatterns = []*regexp.Regexp{
	// GitHub personal access tokens
	regexp.MustCompile(`^ghp_[A-Za-z0-9]{36,}$`),
	// GitHub app tokens
	regexp.MustCompile(`^ghs_[A-Za-z0-9]{36,}$`),
	// GitHub user access tokens
	regexp.MustCompile(`^ghu_[A-Za-z0-9]{36,}$`),
	// GitHub installation tokens
	regexp.MustCompile(`^ghi_[A-Za-z0-9]{36,}$`),
	// Fine-grained personal access tokens
	regexp.MustCompile(`^github_pat_[A-Za-z0-9_]{20,}$`),
	// Authorization header values
	regexp.MustCompile(`(?i)^Bearer\s+[A-Za-z0-9\-_\.]{20,}$`),
	regexp.MustCompile(`(?i)^token\s+[A-Za-z0-9\-_\.]{20,}$`),
}

// SanitizeValue masks the value if it looks sensitive.
func SanitizeValue(value interface{}) interface{} {
	if isSensitiveValue(value) {
		return maskValue(value)
	}
	return value
}

// SanitizeKeyValue checks a key/value pair and masks sensitive information.
func SanitizeKeyValue(key string, value interface{}) (string, interface{}) {
	if isSensitiveKey(key) {
		// Keep the scheme prefix for authorization headers
		if strings.ToLower(key) == "authorization" && isSensitiveValue(value) {
			return key, maskValue(value)
		}
		return key, "***MASKED***"
	}

	if isSensitiveValue(value) {
		return key, maskValue(value)
	}

	return key, value
}

// SanitizeArgs sanitizes logging arguments given as key-value pairs.
func SanitizeArgs(args ...interface{}) []interface{} {
	if len(args) == 0 {
		return args
	}

	sanitized := make([]interface{}, len(args))
	copy(sanitized, args)

	for i := 0; i < len(sanitized)-1; i += 2 {
		if key, ok := sanitized[i].(string); ok {
			_, sanitizedValue := SanitizeKeyValue(key, sanitized[i+1])
			sanitized[i+1] = sanitizedValue
		}
	}

	return sanitized
}

// isSensitiveKey reports whether a key names sensitive data.
func isSensitiveKey(key string) bool {
	lowerKey := strings.ToLower(key)

	for _, pattern := range sensitiveKeyPatterns {
		if lowerKey == pattern ||
			strings.HasPrefix(lowerKey, pattern+"_") ||
			strings.HasSuffix(lowerKey, "_"+pattern) ||
			strings.Contains(lowerKey, "_"+pattern+"_") {
			return true
		}
	}

	return false
}

// isSensitiveValue reports whether a value looks like a credential.
func isSensitiveValue(value interface{}) bool {
	str, ok := value.(string)
	if !ok || str == "" {
		return false
	}

	for _, pattern := range sensitiveValuePatterns {
		if pattern.MatchString(str) {
			return true
		}
	}

	return false
}

// maskValue masks a sensitive value, keeping a recognizable prefix.
func maskValue(value interface{}) string {
	str, ok := value.(string)
	if !ok {
		return "***MASKED***"
	}

	if str == "" {
		return "***MASKED***"
	}

	for _, prefix := range []string{"ghp_", "ghs_", "ghu_", "ghi_", "github_pat_"} {
		if strings.HasPrefix(str, prefix) {
			return prefix + "***MASKED***"
		}
	}

	if strings.HasPrefix(str, "Bearer ") {
		return "Bearer ***MASKED***"
	}
	if strings.HasPrefix(str, "token ") {
		return "token ***MASKED***"
	}

	return "***MASKED***"
}

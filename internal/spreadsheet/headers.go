package spreadsheet

import "strings"

const (
	byteOrderMarkConstant = "\ufeff"
)

// NormalizeHeader trims whitespace and a leading byte-order mark, then lowercases the header.
func NormalizeHeader(rawHeader string) string {
	trimmedHeader := strings.TrimPrefix(rawHeader, byteOrderMarkConstant)
	return strings.ToLower(strings.TrimSpace(trimmedHeader))
}

// NormalizeHeaders normalizes every header, preserving order.
func NormalizeHeaders(rawHeaders []string) []string {
	normalizedHeaders := make([]string, 0, len(rawHeaders))
	for _, rawHeader := range rawHeaders {
		normalizedHeaders = append(normalizedHeaders, NormalizeHeader(rawHeader))
	}
	return normalizedHeaders
}

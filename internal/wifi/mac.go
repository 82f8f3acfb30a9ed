package wifi

import (
	"regexp"
	"strings"
)

// macPattern matches a six-octet colon-separated MAC address, any case.
const macPattern = `(?:[0-9A-Fa-f]{2}:){5}[0-9A-Fa-f]{2}`

var (
	macRegex      = regexp.MustCompile(macPattern)
	macExactRegex = regexp.MustCompile(`^` + macPattern + `$`)
)

// NormalizeMAC canonicalizes a colon-separated MAC token to uppercase.
// Idempotent; input casing is irrelevant.
func NormalizeMAC(mac string) string {
	return strings.ToUpper(strings.TrimSpace(mac))
}

// splitLines splits captured tool output into lines, tolerating both LF and
// CRLF endings uniformly.
func splitLines(output string) []string {
	return strings.Split(strings.ReplaceAll(output, "\r\n", "\n"), "\n")
}

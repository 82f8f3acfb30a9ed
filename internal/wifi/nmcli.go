package wifi

import "strings"

// ParseNmcliList parses the terse output of
// `nmcli --terse -f ssid,chan,signal,security,bssid dev wifi list` (Linux).
//
// Terse mode emits one colon-separated record per line, escaping literal
// colons (notably inside the BSSID) with a backslash. Lines that do not
// yield exactly the requested five fields, or whose BSSID field is not
// MAC-shaped, are skipped.
func ParseNmcliList(output string, opts ...Option) ([]WifiInfo, error) {
	o := applyOptions(opts)

	var records []WifiInfo
	for _, raw := range splitLines(output) {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		fields := splitEscaped(line, ':')
		if len(fields) != 5 {
			continue
		}
		mac := NormalizeMAC(fields[4])
		if !macExactRegex.MatchString(mac) {
			continue
		}

		records = append(records, WifiInfo{
			MAC:         mac,
			SSID:        fields[0],
			Channel:     fields[1],
			SignalLevel: fields[2],
			Security:    fields[3],
		})
	}

	return finish(PlatformLinux, records, o)
}

// splitEscaped splits on sep while honoring backslash escapes, which nmcli
// uses to protect literal separators inside field values.
func splitEscaped(s string, sep rune) []string {
	var fields []string
	var b strings.Builder
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == sep:
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	fields = append(fields, b.String())
	return fields
}

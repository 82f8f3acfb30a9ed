package wifi

import (
	"regexp"
	"strings"
)

// Line shapes produced by `iw dev <ifc> scan`. Records are introduced by a
// "BSS <mac>(on <ifc>)" line; everything up to the next BSS line describes
// that access point. Matching happens on whitespace-trimmed lines, so the
// tool's tab indentation depth is irrelevant.
var (
	iwBSSRegex       = regexp.MustCompile(`^BSS (` + macPattern + `)`)
	iwPrimaryChannel = regexp.MustCompile(`^\* primary channel: (\d+)`)
	iwDSChannel      = regexp.MustCompile(`^DS Parameter set: channel (\d+)`)
	iwSignalRegex    = regexp.MustCompile(`^signal: (-?\d+(?:\.\d+)?) dBm`)
	iwAuthSuites     = regexp.MustCompile(`^\* Authentication suites: (.+)$`)
)

// ParseIWScan parses the output of `iw dev <interface> scan` (Linux).
//
// Unrecognized lines are skipped; a channel reported twice for one record is
// last-one-wins (the HT operation block overrides the legacy DS parameter
// set). Authentication suite strings are carried verbatim from the tool.
func ParseIWScan(output string, opts ...Option) ([]WifiInfo, error) {
	o := applyOptions(opts)

	var records []WifiInfo
	var current *WifiInfo

	for _, raw := range splitLines(output) {
		line := strings.TrimSpace(raw)

		if m := iwBSSRegex.FindStringSubmatch(line); m != nil {
			if current != nil {
				records = append(records, *current)
			}
			current = &WifiInfo{MAC: NormalizeMAC(m[1])}
			continue
		}
		if current == nil {
			continue
		}

		switch {
		case strings.HasPrefix(line, "SSID:"):
			current.SSID = strings.TrimSpace(strings.TrimPrefix(line, "SSID:"))
		case iwPrimaryChannel.MatchString(line):
			current.Channel = iwPrimaryChannel.FindStringSubmatch(line)[1]
		case iwDSChannel.MatchString(line):
			current.Channel = iwDSChannel.FindStringSubmatch(line)[1]
		case iwSignalRegex.MatchString(line):
			current.SignalLevel = iwSignalRegex.FindStringSubmatch(line)[1]
		case iwAuthSuites.MatchString(line):
			suite := iwAuthSuites.FindStringSubmatch(line)[1]
			if current.Security == "" {
				current.Security = suite
			} else if !strings.Contains(current.Security, suite) {
				current.Security += " " + suite
			}
		}
	}
	if current != nil {
		records = append(records, *current)
	}

	return finish(PlatformLinux, records, o)
}

// ParseIWDev extracts the first wireless interface name from `iw dev`
// output.
func ParseIWDev(output string) (string, error) {
	for _, raw := range splitLines(output) {
		if name, ok := strings.CutPrefix(strings.TrimSpace(raw), "Interface "); ok {
			return strings.TrimSpace(name), nil
		}
	}
	return "", &ParseError{Platform: PlatformLinux, Reason: "no wireless interface found"}
}

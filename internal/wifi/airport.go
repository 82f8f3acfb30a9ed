package wifi

import "strings"

// ParseAirportScan parses the column-aligned output of the macOS `airport -s`
// scan (header: SSID BSSID RSSI CHANNEL HT CC SECURITY).
//
// SSIDs may contain spaces and the SSID column is right-aligned, so columns
// cannot be split naively: the MAC-shaped BSSID token is the anchor.
// Everything left of it (trimmed) is the SSID; the fields to its right map,
// in header order, to RSSI and CHANNEL, and whatever follows the HT and CC
// columns is rejoined into the security descriptor.
func ParseAirportScan(output string, opts ...Option) ([]WifiInfo, error) {
	o := applyOptions(opts)

	var records []WifiInfo
	headerSkipped := false

	for _, raw := range splitLines(output) {
		line := strings.TrimRight(raw, " \t")
		if strings.TrimSpace(line) == "" {
			continue
		}

		// The first non-empty line is the fixed header; it only confirms
		// the expected format and is not re-parsed for column offsets.
		if !headerSkipped {
			headerSkipped = true
			if strings.Contains(line, "SSID") && strings.Contains(line, "BSSID") {
				continue
			}
		}

		loc := macRegex.FindStringIndex(line)
		if loc == nil {
			// No MAC-shaped token; vendor noise or a truncated line.
			continue
		}

		info := WifiInfo{
			MAC:  NormalizeMAC(line[loc[0]:loc[1]]),
			SSID: strings.TrimSpace(line[:loc[0]]),
		}

		fields := strings.Fields(line[loc[1]:])
		if len(fields) > 0 {
			info.SignalLevel = fields[0]
		}
		if len(fields) > 1 {
			info.Channel = fields[1]
		}
		// fields[2] and fields[3] are the HT and CC columns.
		if len(fields) > 4 {
			info.Security = strings.Join(fields[4:], " ")
		}

		records = append(records, info)
	}

	return finish(PlatformDarwin, records, o)
}

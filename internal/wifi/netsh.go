package wifi

import (
	"regexp"
	"strconv"
	"strings"
)

// Line shapes produced by `netsh wlan show networks mode=Bssid`. One SSID
// block may enumerate several BSSID sub-blocks (multiple radios broadcasting
// the same network name); each BSSID line becomes its own record.
var (
	netshSSIDRegex    = regexp.MustCompile(`^SSID\s+\d+\s*:\s?(.*)$`)
	netshBSSIDRegex   = regexp.MustCompile(`^BSSID\s+\d+\s*:\s*(` + macPattern + `)`)
	netshSignalRegex  = regexp.MustCompile(`^Signal\s*:\s*(\d+%?)`)
	netshChannelRegex = regexp.MustCompile(`^Channel\s*:\s*(\d+)`)
	netshAuthRegex    = regexp.MustCompile(`^Authentication\s*:\s*(.+)$`)
)

// ParseNetshNetworks parses the output of
// `netsh wlan show networks mode=Bssid` (Windows).
//
// Authentication and Channel lines seen before the first BSSID of a block
// apply to every record the block emits; lines nested under a BSSID override
// for that record only. The Signal percentage is carried in the tool's
// literal form (e.g. "67%"), not converted to dBm.
func ParseNetshNetworks(output string, opts ...Option) ([]WifiInfo, error) {
	o := applyOptions(opts)

	var records []WifiInfo
	var current *WifiInfo

	// Block-level context inherited by each BSSID record in the block.
	var blockSSID, blockAuth, blockChannel string

	flush := func() {
		if current != nil {
			records = append(records, *current)
			current = nil
		}
	}

	for _, raw := range splitLines(output) {
		line := strings.TrimSpace(raw)

		if m := netshSSIDRegex.FindStringSubmatch(line); m != nil {
			flush()
			blockSSID = strings.TrimSpace(m[1])
			blockAuth = ""
			blockChannel = ""
			continue
		}
		if m := netshBSSIDRegex.FindStringSubmatch(line); m != nil {
			flush()
			current = &WifiInfo{
				MAC:      NormalizeMAC(m[1]),
				SSID:     blockSSID,
				Channel:  blockChannel,
				Security: blockAuth,
			}
			continue
		}
		if m := netshAuthRegex.FindStringSubmatch(line); m != nil {
			if current != nil {
				current.Security = strings.TrimSpace(m[1])
			} else {
				blockAuth = strings.TrimSpace(m[1])
			}
			continue
		}
		if m := netshChannelRegex.FindStringSubmatch(line); m != nil {
			if current != nil {
				current.Channel = m[1]
			} else {
				blockChannel = m[1]
			}
			continue
		}
		if m := netshSignalRegex.FindStringSubmatch(line); m != nil && current != nil {
			current.SignalLevel = m[1]
		}
	}
	flush()

	return finish(PlatformWindows, records, o)
}

// InterfaceInfo describes a wireless interface and, when connected, the
// access point it is associated with.
type InterfaceInfo struct {
	WifiInfo
	State string // e.g. "connected", "disconnected"
}

// ParseNetshInterfaces parses the output of `netsh wlan show interfaces`
// (Windows). Blocks start at a "Name : <ifc>" line; only blocks reporting an
// associated BSSID yield a record. Unlike the network scan, the interface
// Signal percentage is converted to an approximate dBm value using the
// inverse NDIS mapping (quality = 2 * (dBm + 100)).
func ParseNetshInterfaces(output string) ([]InterfaceInfo, error) {
	var interfaces []InterfaceInfo
	var current *InterfaceInfo

	flush := func() {
		if current != nil && current.MAC != "" {
			interfaces = append(interfaces, *current)
		}
		current = nil
	}

	for _, raw := range splitLines(output) {
		line := strings.TrimSpace(raw)

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch {
		case key == "Name":
			flush()
			current = &InterfaceInfo{}
		case current == nil:
			// Preamble before the first block.
		case key == "State":
			current.State = value
		case key == "SSID":
			current.SSID = value
		case key == "BSSID":
			current.MAC = NormalizeMAC(value)
		case key == "Authentication":
			current.Security = value
		case key == "Channel":
			current.Channel = value
		case key == "Signal":
			if pct, err := strconv.Atoi(strings.TrimSuffix(value, "%")); err == nil {
				current.SignalLevel = strconv.Itoa(pct/2 - 100)
			}
		}
	}
	flush()

	if len(interfaces) == 0 {
		return nil, &ParseError{Platform: PlatformWindows, Reason: "no wireless interfaces found"}
	}
	return interfaces, nil
}

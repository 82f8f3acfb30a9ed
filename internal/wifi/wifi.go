// Package wifi parses the textual output of platform wireless scanning
// tools (iw, nmcli, airport, netsh) into a uniform record set. Parsers are
// pure functions over already-captured text; running the tools and picking
// which parser to call is the caller's concern (see internal/scan).
package wifi

import "fmt"

// WifiInfo represents a single observed access point.
//
// All fields are strings carried in the scanning tool's native vocabulary:
// Channel may be a channel number or a frequency depending on the platform,
// SignalLevel is dBm on Linux/macOS and a percentage on Windows, and
// Security is the tool's own capability string. A WifiInfo is never mutated
// after being emitted, and duplicates (the same MAC reported twice in one
// scan) are preserved in tool order.
type WifiInfo struct {
	MAC         string // canonical uppercase colon form, never empty
	SSID        string // may be empty for hidden networks
	Channel     string // platform-reported, may be empty
	SignalLevel string // platform-native units, may be empty
	Security    string // free-form tool vocabulary, may be empty
}

// Platform identifies which scanning tool's output format a parser expects.
type Platform string

const (
	PlatformLinux   Platform = "linux"
	PlatformDarwin  Platform = "darwin"
	PlatformWindows Platform = "windows"
)

// ParseFunc is the common contract shared by all platform parsers: full
// captured tool output in, ordered records or a *ParseError out.
type ParseFunc func(output string, opts ...Option) ([]WifiInfo, error)

// ParserFor returns the scan-output parser bound to the given platform.
// The platform set is closed; unknown values are an error, not a fallback.
func ParserFor(p Platform) (ParseFunc, error) {
	switch p {
	case PlatformLinux:
		return ParseIWScan, nil
	case PlatformDarwin:
		return ParseAirportScan, nil
	case PlatformWindows:
		return ParseNetshNetworks, nil
	}
	return nil, fmt.Errorf("no parser for platform %q", p)
}

// options collects per-invocation parse settings.
type options struct {
	allowEmpty bool
}

// Option adjusts parser behavior for a single invocation.
type Option func(*options)

// AllowEmpty makes a parser return an empty record set instead of a
// *ParseError when the input yields zero access points. The default is to
// fail, since an empty result is ambiguous with unparseable output.
func AllowEmpty() Option {
	return func(o *options) { o.allowEmpty = true }
}

func applyOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// finish applies the zero-records policy shared by every parser.
func finish(p Platform, records []WifiInfo, o options) ([]WifiInfo, error) {
	if len(records) == 0 {
		if o.allowEmpty {
			return []WifiInfo{}, nil
		}
		return nil, &ParseError{Platform: p, Reason: "no access points found"}
	}
	return records, nil
}

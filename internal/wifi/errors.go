package wifi

import "fmt"

// ParseError reports that a scanning tool's output could not be turned into
// any access point records. Individual unrecognized lines are tolerated;
// only a wholly empty result is fatal, so a ParseError usually means the
// tool's output format changed or the tool failed silently.
type ParseError struct {
	Platform Platform
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s scan output: %s", e.Platform, e.Reason)
}

//go:build darwin

package scan

import "go.uber.org/zap"

// NewScanner returns the macOS scanner backed by the private-framework
// airport utility.
func NewScanner(logger *zap.Logger, cfg Config) Scanner {
	return &airportScanner{logger: logger, runner: execRunner{}, cfg: cfg}
}

// NewInterfaceLister is not implemented on macOS.
func NewInterfaceLister(_ *zap.Logger) (InterfaceLister, error) {
	return nil, ErrUnsupportedPlatform
}

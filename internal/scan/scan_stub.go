//go:build !linux && !darwin && !windows

package scan

import (
	"context"

	"go.uber.org/zap"

	"github.com/HerbHall/airscout/internal/wifi"
)

type stubScanner struct{}

func (stubScanner) Available() bool { return false }

func (stubScanner) Scan(_ context.Context) ([]wifi.WifiInfo, error) {
	return nil, ErrUnsupportedPlatform
}

// NewScanner returns a scanner that always fails; wifi scanning is only
// supported on Linux, macOS and Windows.
func NewScanner(_ *zap.Logger, _ Config) Scanner {
	return stubScanner{}
}

// NewInterfaceLister is not implemented on this platform.
func NewInterfaceLister(_ *zap.Logger) (InterfaceLister, error) {
	return nil, ErrUnsupportedPlatform
}

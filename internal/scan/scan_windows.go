//go:build windows

package scan

import "go.uber.org/zap"

// NewScanner returns the Windows scanner backed by netsh.
func NewScanner(logger *zap.Logger, cfg Config) Scanner {
	return &netshScanner{logger: logger, runner: execRunner{}, cfg: cfg}
}

// NewInterfaceLister returns a lister backed by `netsh wlan show interfaces`.
func NewInterfaceLister(_ *zap.Logger) (InterfaceLister, error) {
	return &netshInterfaceLister{runner: execRunner{}}, nil
}

package scan

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/HerbHall/airscout/internal/wifi"
	"go.uber.org/zap"
)

// Tool invocations mirror the platform conventions: nmcli terse mode and
// iw on Linux (iw often lives in /usr/sbin), the private-framework airport
// binary on macOS, netsh on Windows. Each scanner shells out through its
// Runner and defers all text interpretation to internal/wifi.

const (
	sbinPath    = "/usr/sbin:/sbin"
	airportPath = "/System/Library/PrivateFrameworks/Apple80211.framework/Versions/Current/Resources/airport"
)

type nmcliScanner struct {
	logger *zap.Logger
	runner Runner
	cfg    Config
}

func (s *nmcliScanner) Available() bool {
	_, err := exec.LookPath("nmcli")
	return err == nil
}

func (s *nmcliScanner) Scan(ctx context.Context) ([]wifi.WifiInfo, error) {
	out, err := s.runner.Run(ctx, "nmcli",
		"--color", "no", "--terse",
		"-f", "ssid,chan,signal,security,bssid",
		"dev", "wifi", "list")
	if err != nil {
		return nil, err
	}
	return wifi.ParseNmcliList(string(out), s.cfg.parseOpts()...)
}

type iwScanner struct {
	logger *zap.Logger
	runner Runner
	cfg    Config

	// resolve overrides wireless interface discovery; when nil the scanner
	// parses `iw dev` output. Linux construction plugs in nl80211 discovery.
	resolve func(ctx context.Context) (string, error)
}

func (s *iwScanner) Available() bool {
	if _, err := exec.LookPath("iw"); err == nil {
		return true
	}
	// LookPath consults PATH only; iw commonly lives in sbin.
	for _, dir := range strings.Split(sbinPath, ":") {
		if _, err := os.Stat(dir + "/iw"); err == nil {
			return true
		}
	}
	return false
}

func (s *iwScanner) Scan(ctx context.Context) ([]wifi.WifiInfo, error) {
	ifc := s.cfg.Interface
	if ifc == "" {
		var err error
		if s.resolve != nil {
			ifc, err = s.resolve(ctx)
		} else {
			ifc, err = s.resolveViaIWDev(ctx)
		}
		if err != nil {
			return nil, err
		}
	}

	s.logger.Debug("running iw scan", zap.String("interface", ifc))
	out, err := s.runner.Run(ctx, "iw", "dev", ifc, "scan")
	if err != nil {
		return nil, err
	}
	return wifi.ParseIWScan(string(out), s.cfg.parseOpts()...)
}

func (s *iwScanner) resolveViaIWDev(ctx context.Context) (string, error) {
	out, err := s.runner.Run(ctx, "iw", "dev")
	if err != nil {
		return "", err
	}
	return wifi.ParseIWDev(string(out))
}

type airportScanner struct {
	logger *zap.Logger
	runner Runner
	cfg    Config
}

func (s *airportScanner) Available() bool {
	_, err := os.Stat(airportPath)
	return err == nil
}

func (s *airportScanner) Scan(ctx context.Context) ([]wifi.WifiInfo, error) {
	out, err := s.runner.Run(ctx, airportPath, "-s")
	if err != nil {
		return nil, err
	}
	return wifi.ParseAirportScan(string(out), s.cfg.parseOpts()...)
}

type netshScanner struct {
	logger *zap.Logger
	runner Runner
	cfg    Config
}

func (s *netshScanner) Available() bool {
	_, err := exec.LookPath("netsh")
	return err == nil
}

func (s *netshScanner) Scan(ctx context.Context) ([]wifi.WifiInfo, error) {
	out, err := s.runner.Run(ctx, "netsh", "wlan", "show", "networks", "mode=Bssid")
	if err != nil {
		return nil, err
	}
	return wifi.ParseNetshNetworks(string(out), s.cfg.parseOpts()...)
}

// InterfaceLister enumerates local wireless interfaces and their current
// association state. Only implemented on Windows (netsh wlan show
// interfaces); other platforms return ErrUnsupportedPlatform from
// NewInterfaceLister.
type InterfaceLister interface {
	Interfaces(ctx context.Context) ([]wifi.InterfaceInfo, error)
}

type netshInterfaceLister struct {
	runner Runner
}

func (l *netshInterfaceLister) Interfaces(ctx context.Context) ([]wifi.InterfaceInfo, error) {
	out, err := l.runner.Run(ctx, "netsh", "wlan", "show", "interfaces")
	if err != nil {
		return nil, err
	}
	return wifi.ParseNetshInterfaces(string(out))
}

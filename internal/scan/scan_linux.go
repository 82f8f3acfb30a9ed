//go:build linux

package scan

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	nl80211 "github.com/mdlayher/wifi"
	"go.uber.org/zap"

	"github.com/HerbHall/airscout/internal/wifi"
)

// NewScanner returns the Linux scanner. nmcli is preferred when
// NetworkManager is present (it reuses NetworkManager's scan cache and needs
// no privileges); iw is the fallback. Interface discovery goes through
// nl80211 first and only shells out to `iw dev` when netlink is unavailable.
func NewScanner(logger *zap.Logger, cfg Config) Scanner {
	nm := &nmcliScanner{logger: logger, runner: execRunner{}, cfg: cfg}
	iw := &iwScanner{logger: logger, runner: execRunner{extraPath: sbinPath}, cfg: cfg}
	iw.resolve = func(ctx context.Context) (string, error) {
		name, err := nl80211StationInterface()
		if err == nil {
			return name, nil
		}
		logger.Debug("nl80211 interface discovery failed, falling back to iw dev", zap.Error(err))
		return iw.resolveViaIWDev(ctx)
	}
	return &chainScanner{logger: logger, backends: []Scanner{nm, iw}}
}

// nl80211StationInterface returns the name of the first station-mode
// wireless interface via netlink.
func nl80211StationInterface() (string, error) {
	c, err := nl80211.New()
	if err != nil {
		return "", fmt.Errorf("open nl80211 client: %w", err)
	}
	defer c.Close()

	ifaces, err := c.Interfaces()
	if err != nil {
		return "", fmt.Errorf("enumerate wifi interfaces: %w", err)
	}
	for _, ifi := range ifaces {
		if ifi.Type == nl80211.InterfaceTypeStation && ifi.Name != "" {
			return ifi.Name, nil
		}
	}
	return "", errors.New("no station-mode wifi interface found")
}

// NewInterfaceLister returns a lister reporting each station-mode wireless
// interface and the access point it is currently associated with, via
// nl80211. The Linux counterpart of `netsh wlan show interfaces`.
func NewInterfaceLister(logger *zap.Logger) (InterfaceLister, error) {
	return &nl80211InterfaceLister{logger: logger}, nil
}

type nl80211InterfaceLister struct {
	logger *zap.Logger
}

func (l *nl80211InterfaceLister) Interfaces(_ context.Context) ([]wifi.InterfaceInfo, error) {
	c, err := nl80211.New()
	if err != nil {
		return nil, fmt.Errorf("open nl80211 client: %w", err)
	}
	defer c.Close()

	ifaces, err := c.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("enumerate wifi interfaces: %w", err)
	}

	var infos []wifi.InterfaceInfo
	for _, ifi := range ifaces {
		if ifi.Type != nl80211.InterfaceTypeStation || ifi.Name == "" {
			continue
		}

		info := wifi.InterfaceInfo{State: "disconnected"}
		if ifi.HardwareAddr != nil {
			info.MAC = wifi.NormalizeMAC(ifi.HardwareAddr.String())
		}

		bss, bssErr := c.BSS(ifi)
		if bssErr != nil {
			// Not associated, or no permission for BSS info.
			l.logger.Debug("no BSS info for interface",
				zap.String("interface", ifi.Name),
				zap.Error(bssErr))
			infos = append(infos, info)
			continue
		}

		info.SSID = bss.SSID
		info.Channel = freqToChannel(bss.Frequency)
		info.State = bss.Status.String()
		if bss.BSSID != nil {
			info.MAC = wifi.NormalizeMAC(bss.BSSID.String())
		}

		if stations, stErr := c.StationInfo(ifi); stErr == nil && len(stations) > 0 {
			info.SignalLevel = strconv.Itoa(stations[0].Signal)
		}

		infos = append(infos, info)
	}

	if len(infos) == 0 {
		return nil, errors.New("no wireless interfaces found")
	}
	return infos, nil
}

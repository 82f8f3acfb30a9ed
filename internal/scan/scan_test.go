package scan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/HerbHall/airscout/internal/wifi"
)

// fakeRunner serves canned tool output keyed by the full command line.
type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
	calls   []string
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	r.calls = append(r.calls, key)
	if err, ok := r.errs[key]; ok {
		return nil, err
	}
	out, ok := r.outputs[key]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrToolNotFound)
	}
	return []byte(out), nil
}

func TestNmcliScanner_Scan(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"nmcli --color no --terse -f ssid,chan,signal,security,bssid dev wifi list": `HomeNet:11:72:WPA2:AA\:BB\:CC\:DD\:EE\:FF` + "\n",
	}}
	s := &nmcliScanner{logger: zaptest.NewLogger(t), runner: runner, cfg: DefaultConfig()}

	got, err := s.Scan(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", got[0].MAC)
	assert.Equal(t, "HomeNet", got[0].SSID)
}

func TestIWScanner_Scan_AutoDetectsInterface(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"iw dev": "phy#0\n\tInterface wlp2s0\n\t\ttype managed\n",
		"iw dev wlp2s0 scan": "BSS aa:bb:cc:dd:ee:ff(on wlp2s0)\n" +
			"\tSSID: TestNet\n" +
			"\tsignal: -67.00 dBm\n" +
			"\tDS Parameter set: channel 6\n",
	}}
	s := &iwScanner{logger: zaptest.NewLogger(t), runner: runner, cfg: DefaultConfig()}

	got, err := s.Scan(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", got[0].MAC)
	assert.Equal(t, "6", got[0].Channel)
	assert.Equal(t, []string{"iw dev", "iw dev wlp2s0 scan"}, runner.calls)
}

func TestIWScanner_Scan_ConfiguredInterface(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"iw dev wlan1 scan": "BSS aa:bb:cc:dd:ee:01(on wlan1)\n\tSSID: Other\n",
	}}
	cfg := DefaultConfig()
	cfg.Interface = "wlan1"
	s := &iwScanner{logger: zaptest.NewLogger(t), runner: runner, cfg: cfg}

	got, err := s.Scan(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"iw dev wlan1 scan"}, runner.calls, "should not probe iw dev")
}

func TestAirportScanner_Scan(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		airportPath + " -s": "                            SSID BSSID             RSSI CHANNEL HT CC SECURITY (auth/unicast/group)\n" +
			"                          MyNet aa:bb:cc:dd:ee:ff -60  1       Y  US WPA2(PSK/AES/AES)\n",
	}}
	s := &airportScanner{logger: zaptest.NewLogger(t), runner: runner, cfg: DefaultConfig()}

	got, err := s.Scan(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "MyNet", got[0].SSID)
	assert.Equal(t, "-60", got[0].SignalLevel)
}

func TestNetshScanner_Scan(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"netsh wlan show networks mode=Bssid": "SSID 1 : HomeNet\n" +
			"    Authentication          : WPA2-Personal\n" +
			"    BSSID 1                 : aa:bb:cc:dd:ee:ff\n" +
			"         Signal             : 80%\n" +
			"         Channel            : 6\n",
	}}
	s := &netshScanner{logger: zaptest.NewLogger(t), runner: runner, cfg: DefaultConfig()}

	got, err := s.Scan(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "80%", got[0].SignalLevel)
	assert.Equal(t, "WPA2-Personal", got[0].Security)
}

func TestNetshInterfaceLister(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"netsh wlan show interfaces": "    Name                   : Wi-Fi\n" +
			"    State                  : connected\n" +
			"    SSID                   : HomeNet\n" +
			"    BSSID                  : aa:bb:cc:dd:ee:ff\n" +
			"    Authentication         : WPA2-Personal\n" +
			"    Channel                : 44\n" +
			"    Signal                 : 90%\n",
	}}
	l := &netshInterfaceLister{runner: runner}

	got, err := l.Interfaces(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "connected", got[0].State)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", got[0].MAC)
}

func TestScan_ParseErrorPropagates(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"netsh wlan show networks mode=Bssid": "There are 0 networks currently visible.\n",
	}}
	s := &netshScanner{logger: zaptest.NewLogger(t), runner: runner, cfg: DefaultConfig()}

	_, err := s.Scan(context.Background())
	var perr *wifi.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestScan_AllowEmpty(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"netsh wlan show networks mode=Bssid": "There are 0 networks currently visible.\n",
	}}
	cfg := DefaultConfig()
	cfg.AllowEmpty = true
	s := &netshScanner{logger: zaptest.NewLogger(t), runner: runner, cfg: cfg}

	got, err := s.Scan(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

// failingScanner stands in for a backend whose tool is installed but broken.
type failingScanner struct{ err error }

func (s failingScanner) Available() bool { return true }
func (s failingScanner) Scan(_ context.Context) ([]wifi.WifiInfo, error) {
	return nil, s.err
}

type staticScanner struct{ results []wifi.WifiInfo }

func (s staticScanner) Available() bool { return true }
func (s staticScanner) Scan(_ context.Context) ([]wifi.WifiInfo, error) {
	return s.results, nil
}

type absentScanner struct{}

func (absentScanner) Available() bool { return false }
func (absentScanner) Scan(_ context.Context) ([]wifi.WifiInfo, error) {
	panic("scan called on unavailable backend")
}

func TestChainScanner_FallsBack(t *testing.T) {
	want := []wifi.WifiInfo{{MAC: "AA:BB:CC:DD:EE:FF", SSID: "net"}}
	c := &chainScanner{
		logger: zaptest.NewLogger(t),
		backends: []Scanner{
			absentScanner{},
			failingScanner{err: errors.New("tool exploded")},
			staticScanner{results: want},
		},
	}

	require.True(t, c.Available())
	got, err := c.Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestChainScanner_AllFail(t *testing.T) {
	sentinel := errors.New("broken")
	c := &chainScanner{
		logger:   zaptest.NewLogger(t),
		backends: []Scanner{failingScanner{err: sentinel}},
	}

	_, err := c.Scan(context.Background())
	require.ErrorIs(t, err, sentinel)
}

func TestChainScanner_NoneAvailable(t *testing.T) {
	c := &chainScanner{
		logger:   zaptest.NewLogger(t),
		backends: []Scanner{absentScanner{}},
	}

	require.False(t, c.Available())
	_, err := c.Scan(context.Background())
	require.ErrorIs(t, err, ErrToolNotFound)
}

func TestToolExitError_Message(t *testing.T) {
	err := &ToolExitError{Tool: "iw", ExitCode: 240, Stderr: "command failed: Operation not permitted (-1)"}
	assert.Contains(t, err.Error(), "iw")
	assert.Contains(t, err.Error(), "240")
	assert.Contains(t, err.Error(), "not permitted")

	bare := &ToolExitError{Tool: "netsh", ExitCode: 1}
	assert.Equal(t, "netsh exited with code 1", bare.Error())
}

func TestFreqToChannel(t *testing.T) {
	tests := []struct {
		name    string
		freqMHz int
		want    string
	}{
		{"2.4GHz channel 1", 2412, "1"},
		{"2.4GHz channel 6", 2437, "6"},
		{"2.4GHz channel 13", 2472, "13"},
		{"2.4GHz channel 14 (Japan)", 2484, "14"},
		{"5GHz channel 36", 5180, "36"},
		{"5GHz channel 149", 5745, "149"},
		{"6GHz channel 1", 5955, "1"},
		{"6GHz channel 233", 7115, "233"},
		{"between bands", 3000, ""},
		{"zero", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := freqToChannel(tt.freqMHz); got != tt.want {
				t.Errorf("freqToChannel(%d) = %q, want %q", tt.freqMHz, got, tt.want)
			}
		})
	}
}

// Package scan locates and runs the platform wireless scanning tool,
// captures its output, and hands the text to the matching parser in
// internal/wifi. It owns everything the parsers deliberately do not:
// process spawning, PATH quirks, timeouts, and tool-missing errors.
package scan

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/HerbHall/airscout/internal/wifi"
	"go.uber.org/zap"
)

// Scanner discovers nearby WiFi access points.
type Scanner interface {
	Available() bool
	Scan(ctx context.Context) ([]wifi.WifiInfo, error)
}

// Runner executes an external tool and captures its stdout. Scanners take a
// Runner so they can be tested against canned output without the tool
// installed.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// Sentinel errors distinguishing invocation failures from parse failures
// (*wifi.ParseError).
var (
	ErrToolNotFound        = errors.New("scanning tool not found")
	ErrUnsupportedPlatform = errors.New("wifi scanning is not supported on this platform")
)

// ToolExitError reports a scanning tool that ran but exited non-zero.
type ToolExitError struct {
	Tool     string
	ExitCode int
	Stderr   string
}

func (e *ToolExitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s exited with code %d: %s", e.Tool, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("%s exited with code %d", e.Tool, e.ExitCode)
}

// Config holds scan layer configuration.
type Config struct {
	Interface  string        `mapstructure:"interface"`   // wireless interface; auto-detected when empty
	Timeout    time.Duration `mapstructure:"timeout"`     // per-scan deadline imposed by the caller
	AllowEmpty bool          `mapstructure:"allow_empty"` // treat zero results as a valid empty outcome
}

// DefaultConfig returns the default scan configuration.
func DefaultConfig() Config {
	return Config{
		Timeout: 30 * time.Second,
	}
}

func (c Config) parseOpts() []wifi.Option {
	if c.AllowEmpty {
		return []wifi.Option{wifi.AllowEmpty()}
	}
	return nil
}

// execRunner runs tools via os/exec. extraPath is appended to PATH so tools
// living in sbin directories are found even for unprivileged users.
type execRunner struct {
	extraPath string
}

func (r execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if r.extraPath != "" {
		path := os.Getenv("PATH")
		if path == "" {
			path = r.extraPath
		} else {
			path = path + string(os.PathListSeparator) + r.extraPath
		}
		cmd.Env = append(os.Environ(), "PATH="+path)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.Is(err, exec.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", name, ErrToolNotFound)
		case errors.As(err, &exitErr):
			return nil, &ToolExitError{
				Tool:     name,
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(stderr.String()),
			}
		}
		return nil, fmt.Errorf("run %s: %w", name, err)
	}
	return stdout.Bytes(), nil
}

// chainScanner tries each backend in order until one succeeds or all fail.
type chainScanner struct {
	logger   *zap.Logger
	backends []Scanner
}

func (c *chainScanner) Available() bool {
	for _, b := range c.backends {
		if b.Available() {
			return true
		}
	}
	return false
}

func (c *chainScanner) Scan(ctx context.Context) ([]wifi.WifiInfo, error) {
	var lastErr error
	for _, b := range c.backends {
		if !b.Available() {
			continue
		}
		results, err := b.Scan(ctx)
		if err == nil {
			return results, nil
		}
		lastErr = err
		c.logger.Debug("scan backend failed, trying next", zap.Error(err))
	}
	if lastErr == nil {
		return nil, fmt.Errorf("wifi scan: %w", ErrToolNotFound)
	}
	return nil, lastErr
}

// freqToChannel converts a WiFi center frequency in MHz to a channel number
// as a string, matching the vocabulary the text parsers produce. Returns ""
// for unrecognised frequencies.
func freqToChannel(freqMHz int) string {
	var ch int
	switch {
	// 2.4 GHz band: channels 1-14
	case freqMHz >= 2412 && freqMHz <= 2484:
		if freqMHz == 2484 {
			ch = 14 // Japan channel 14
		} else {
			ch = (freqMHz-2412)/5 + 1
		}
	// 5 GHz band: channels 36-177
	case freqMHz >= 5180 && freqMHz <= 5885:
		ch = (freqMHz-5180)/5 + 36
	// 6 GHz band (WiFi 6E): channels 1-233
	case freqMHz >= 5955 && freqMHz <= 7115:
		ch = (freqMHz-5955)/5 + 1
	default:
		return ""
	}
	return strconv.Itoa(ch)
}

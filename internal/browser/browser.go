// Package browser opens GitHub links in the user's default browser.
package browser

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"github.com/quocvuong92/tassist/internal/logging"
)

var (
	// ErrInvalidURL is returned for links that are not absolute http(s) URLs
	ErrInvalidURL = errors.New("invalid URL")
	// ErrUnsupportedPlatform is returned when no opener is known for the OS
	ErrUnsupportedPlatform = errors.New("opening URLs is not supported on this platform")
)

const illegalURLChars = " \t\r\n<>{}|\\^`\""

// Launcher opens a URL
type Launcher interface {
	OpenURL(ctx context.Context, url string) error
}

// SystemLauncher opens URLs with the platform's opener command
type SystemLauncher struct {
	goos  string
	start func(cmd *exec.Cmd) error
}

// NewSystemLauncher creates a launcher for the running OS
func NewSystemLauncher() *SystemLauncher {
	return &SystemLauncher{
		goos:  runtime.GOOS,
		start: (*exec.Cmd).Start,
	}
}

// ValidateURL checks that raw is an absolute http or https URL
func ValidateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: empty", ErrInvalidURL)
	}
	if strings.ContainsAny(raw, illegalURLChars) {
		return fmt.Errorf("%w: %q contains illegal characters", ErrInvalidURL, raw)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: %q is not an http(s) URL", ErrInvalidURL, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: %q has no host", ErrInvalidURL, raw)
	}
	return nil
}

// OpenURL validates rawURL and hands it to the platform opener without
// waiting for the browser. The opener outlives ctx once started.
func (l *SystemLauncher) OpenURL(ctx context.Context, rawURL string) error {
	if err := ValidateURL(rawURL); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	cmd, err := l.command(rawURL)
	if err != nil {
		return err
	}

	logging.Debug("Opening browser", logging.Fields{"url": rawURL, "opener": cmd.Path})
	if err := l.start(cmd); err != nil {
		return fmt.Errorf("failed to start browser: %w", err)
	}
	if cmd.Process != nil {
		go cmd.Wait()
	}
	return nil
}

func (l *SystemLauncher) command(rawURL string) (*exec.Cmd, error) {
	switch l.goos {
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL), nil
	case "darwin":
		return exec.Command("open", rawURL), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", rawURL), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, l.goos)
	}
}

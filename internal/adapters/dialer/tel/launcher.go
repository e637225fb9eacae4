package tel

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/bnema/symcheck/internal/ports"
)

var (
	ErrUnavailable   = errors.New("no tel: handler available")
	ErrInvalidNumber = errors.New("invalid emergency number")
)

type runFunc func(ctx context.Context, name string, args ...string) (stderr string, err error)

// Launcher hands a tel: URI to the desktop opener so the system phone handler
// can place the call.
type Launcher struct {
	goos string
	run  runFunc
}

var _ ports.EmergencyDialer = (*Launcher)(nil)

func NewLauncher() *Launcher {
	return &Launcher{goos: runtime.GOOS, run: runOpener}
}

func (l *Launcher) Dial(ctx context.Context, number string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	uri, err := URI(number)
	if err != nil {
		return err
	}

	name, args := openerCommand(l.goos, uri)
	stderr, err := l.run(ctx, name, args...)
	if err != nil {
		return formatError(uri, err, stderr)
	}

	return nil
}

// URI builds the tel: URI for number. Only dialable characters are accepted.
func URI(number string) (string, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidNumber)
	}
	for _, r := range number {
		if (r < '0' || r > '9') && !strings.ContainsRune("+*#", r) {
			return "", fmt.Errorf("%w: %q", ErrInvalidNumber, number)
		}
	}

	return "tel:" + number, nil
}

func openerCommand(goos string, uri string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{uri}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", uri}
	default:
		return "xdg-open", []string{uri}
	}
}

func runOpener(ctx context.Context, name string, args ...string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %s not found", ErrUnavailable, name)
		}
		return "", fmt.Errorf("locate %s: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err = cmd.Run()
	return strings.TrimSpace(stderr.String()), err
}

func formatError(uri string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("open %s: %w", uri, err)
	}

	return fmt.Errorf("open %s: %w: %s", uri, err, stderr)
}

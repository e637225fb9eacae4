package chain

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/symcheck/internal/adapters/dialer/console"
	"github.com/bnema/symcheck/internal/adapters/dialer/tel"
	"github.com/bnema/symcheck/internal/ports"
)

type Dialer struct {
	primary  ports.EmergencyDialer
	fallback ports.EmergencyDialer
}

var _ ports.EmergencyDialer = (*Dialer)(nil)

var (
	errNilPrimaryDialer  = errors.New("primary dialer is nil")
	errNilFallbackDialer = errors.New("fallback dialer is nil")
)

func NewDialer(primary ports.EmergencyDialer, fallback ports.EmergencyDialer) (*Dialer, error) {
	if primary == nil {
		return nil, errNilPrimaryDialer
	}
	if fallback == nil {
		return nil, errNilFallbackDialer
	}

	return &Dialer{primary: primary, fallback: fallback}, nil
}

// NewTelFirstWithConsoleFallback tries the system tel: handler and prints
// dialing instructions to out when no handler could be launched.
func NewTelFirstWithConsoleFallback(out io.Writer) (*Dialer, error) {
	return NewDialer(tel.NewLauncher(), console.NewDialer(out))
}

func (d *Dialer) Dial(ctx context.Context, number string) error {
	err := d.primary.Dial(ctx, number)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := d.fallback.Dial(ctx, number)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary dialer failed: %w; fallback dialer failed: %w", err, fallbackErr)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, tel.ErrInvalidNumber)
}

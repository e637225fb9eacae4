package console

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/symcheck/internal/ports"
)

// Dialer cannot place calls; it tells the user which number to dial.
type Dialer struct {
	out io.Writer
}

var _ ports.EmergencyDialer = (*Dialer)(nil)

func NewDialer(out io.Writer) *Dialer {
	return &Dialer{out: out}
}

func (d *Dialer) Dial(ctx context.Context, number string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	number = strings.TrimSpace(number)
	if _, err := fmt.Fprintf(d.out, "Call %s now from your phone. If you cannot call, ask someone nearby to call for you.\n", number); err != nil {
		return fmt.Errorf("write dial instructions: %w", err)
	}

	return nil
}

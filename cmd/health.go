package cmd

import (
	"context"

	"github.com/bnema/symcheck/internal/adapters/render/chat"
	"github.com/bnema/symcheck/internal/domain"
	"github.com/spf13/cobra"
)

func newHealthCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check whether the assessment gateway is up",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var status domain.HealthStatus
			fetch := func(ctx context.Context) error {
				var err error
				status, err = app.gateway.Health(ctx)
				return err
			}

			if asJSON {
				if err := fetch(cmd.Context()); err != nil {
					return err
				}
				return writeJSON(cmd, status)
			}

			if err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), plainTask("Checking gateway..."), fetch); err != nil {
				return err
			}
			rendered, err := chat.RenderHealth(status)
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

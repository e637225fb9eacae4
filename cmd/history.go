package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/symcheck/internal/adapters/render/chat"
	"github.com/bnema/symcheck/internal/domain"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *app) *cobra.Command {
	var asJSON bool

	historyCmd := &cobra.Command{
		Use:   "history <session-id>",
		Short: "Show the server-side transcript of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var history domain.ConversationHistory
			fetch := func(ctx context.Context) error {
				var err error
				history, err = app.gateway.History(ctx, args[0])
				return err
			}

			if asJSON {
				if err := fetch(cmd.Context()); err != nil {
					return err
				}
				return writeJSON(cmd, history)
			}

			if err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), plainTask("Fetching history..."), fetch); err != nil {
				return err
			}
			rendered, err := chat.RenderHistory(history)
			return writeRendered(cmd, rendered, err)
		},
	}

	historyCmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	historyCmd.AddCommand(newHistoryExportCmd(app))

	return historyCmd
}

func newHistoryExportCmd(app *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export <session-id>",
		Short: "Export a session transcript as json or text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exportFormat, err := domain.ParseExportFormat(format)
			if err != nil {
				return fmt.Errorf("%w: %q (use json or text)", err, format)
			}

			body, err := app.gateway.Export(cmd.Context(), args[0], exportFormat)
			if err != nil {
				return err
			}

			if _, err := cmd.OutOrStdout().Write(body); err != nil {
				return err
			}
			if len(body) > 0 && body[len(body)-1] != '\n' {
				_, err = fmt.Fprintln(cmd.OutOrStdout())
			}
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", string(domain.ExportFormatJSON), "Export format: json or text")

	return cmd
}

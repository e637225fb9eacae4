package cmd

import (
	"fmt"

	"github.com/bnema/symcheck/internal/adapters/render/chat"
	"github.com/bnema/symcheck/internal/domain"
	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
)

func newSavedCmd(app *app) *cobra.Command {
	savedCmd := &cobra.Command{
		Use:   "saved",
		Short: "Inspect assessments kept on this machine",
	}

	savedCmd.AddCommand(newSavedListCmd(app))

	return savedCmd
}

func newSavedListCmd(app *app) *cobra.Command {
	var (
		asJSON  bool
		session string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List locally saved assessments, oldest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := app.persistence.List(cmd.Context())
			if err != nil {
				return err
			}

			if session != "" {
				records, err = filterBySession(records, session)
				if err != nil {
					return err
				}
			}

			if asJSON {
				return writeJSON(cmd, records)
			}

			rendered, err := chat.RenderSaved(records)
			return writeRendered(cmd, rendered, err)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&session, "session", "", "Only records whose session id matches this glob, e.g. \"s-*\"")

	return cmd
}

func filterBySession(records []domain.SavedAssessmentRecord, pattern string) ([]domain.SavedAssessmentRecord, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid --session pattern %q: %w", pattern, err)
	}

	filtered := make([]domain.SavedAssessmentRecord, 0, len(records))
	for _, record := range records {
		if g.Match(record.SessionID) {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}

package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "symcheck",
		Short:         "Symptom checker client: describe symptoms, get an urgency assessment",
		Long:          "symcheck talks to a remote assessment gateway. It collects a patient profile, relays symptom messages, highlights emergencies and keeps saved assessments locally when the server cannot store them.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newHealthCmd(app),
		newChatCmd(app),
		newSavedCmd(app),
		newHistoryCmd(app),
	)

	return rootCmd
}

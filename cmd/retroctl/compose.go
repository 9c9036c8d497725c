package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"retro-backend/internal/advice"
)

func composeCmd() *cobra.Command {
	var input advice.RetrospectiveInput
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Print the recommendation prompt for the given notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt, err := advice.Build(input)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), prompt)
			return nil
		},
	}
	addInputFlags(cmd, &input)
	return cmd
}

func addInputFlags(cmd *cobra.Command, input *advice.RetrospectiveInput) {
	cmd.Flags().StringVarP(&input.PainPoints, "pain-points", "p", "", "Recent pain points")
	cmd.Flags().StringVarP(&input.MoodNote, "mood-note", "m", "", "Recent emotional note")
}

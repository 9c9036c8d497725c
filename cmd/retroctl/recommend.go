package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"retro-backend/internal/advice"
	"retro-backend/internal/bootstrap"
	"retro-backend/internal/shared/config"
	"retro-backend/internal/shared/telemetry"
)

func recommendCmd() *cobra.Command {
	var input advice.RetrospectiveInput
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Generate recommendations with the configured provider",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			telemetry.SetLevel(cfg.LogLevel)
			defer telemetry.Sync()

			gen, model, err := bootstrap.BuildGenerator(cfg)
			if err != nil {
				return fmt.Errorf("build generator: %w", err)
			}
			svc := &advice.Service{
				Generator: gen,
				Config:    bootstrap.GenerationConfig(cfg),
				Model:     model,
			}
			recs, err := svc.Recommend(cmd.Context(), input)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), recs)
		},
	}
	addInputFlags(cmd, &input)
	return cmd
}

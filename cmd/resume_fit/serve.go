package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-fit/internal/server"
	"github.com/jonathan/resume-fit/internal/types"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr          string
		candidatePath string
		databaseURL   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long: `Start an HTTP server exposing the analyze, customize, score and run
endpoints. A default candidate profile and a run tracker are optional.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg := a.cfg.Server
			if addr != "" {
				cfg.Addr = addr
			}

			var candidate *types.CandidateProfile
			if candidatePath != "" || a.cfg.Candidate != "" {
				loaded, err := a.candidate(candidatePath)
				if err != nil {
					return err
				}
				candidate = loaded
			} else {
				a.log.Info("no default candidate configured, requests must include one")
			}

			store, err := a.openStore(ctx, databaseURL)
			if err != nil {
				return err
			}
			if store != nil {
				defer store.Close()
			}

			srv := server.New(server.Options{
				Config:    cfg,
				Store:     store,
				Candidate: candidate,
				Logger:    a.log,
			})
			a.log.Debug("server configured",
				zap.Float64("rate_limit", cfg.RateLimit),
				zap.Int("burst", cfg.Burst),
				zap.Bool("tracking", store != nil))
			return srv.Start(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config, default :8080)")
	cmd.Flags().StringVarP(&candidatePath, "candidate", "c", "", "Default candidate profile for requests without one")
	cmd.Flags().StringVar(&databaseURL, "db", "", "Run tracker URL: postgres://... or sqlite://path (overrides config)")
	return cmd
}

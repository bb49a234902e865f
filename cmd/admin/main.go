package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/app"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/config"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/domain/matchevent"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/interfaces/httpapi"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/platform/logging"
	"github.com/lakshmanan12-07/AI-Generated-Live-Score-Website/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(loadServices).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// adminServices is the slice of the use cases the CLI drives.
type adminServices interface {
	SeedAdmin(ctx context.Context, email, password string) (created bool, err error)
	AbandonMatch(ctx context.Context, matchID string) (any, error)
	RecomputeInnings(ctx context.Context, inningsID string) (any, error)
	Close() error
}

type serviceLoader func(ctx context.Context) (adminServices, error)

func loadServices(ctx context.Context) (adminServices, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := logging.NewConsole(cfg.LogLevel)
	// seed-admin creates the account explicitly
	cfg.SeedEnabled = false

	services, err := app.NewServices(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return appServices{services: services}, nil
}

type appServices struct {
	services *app.Services
}

func (s appServices) SeedAdmin(ctx context.Context, email, password string) (bool, error) {
	_, created, err := s.services.Auth.SeedAdmin(ctx, email, password)
	return created, err
}

func (s appServices) AbandonMatch(ctx context.Context, matchID string) (any, error) {
	item, err := s.services.Match.AbandonMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	return httpapi.EncodeMatchEvent(matchevent.Event{MatchID: item.ID, Payload: item})
}

func (s appServices) RecomputeInnings(ctx context.Context, inningsID string) (any, error) {
	item, err := s.services.Scoring.RecomputeInnings(ctx, inningsID)
	if err != nil {
		return nil, err
	}
	return httpapi.EncodeMatchEvent(matchevent.Event{MatchID: item.MatchID, Payload: item})
}

func (s appServices) Close() error {
	return s.services.Close()
}

func newRootCommand(load serviceLoader) *cobra.Command {
	root := &cobra.Command{
		Use:           "admin",
		Short:         "Administrative tasks for the live score service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var email, password string
	seed := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create the admin account if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			services, err := load(cmd.Context())
			if err != nil {
				return err
			}
			defer services.Close()

			created, err := services.SeedAdmin(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintln(cmd.OutOrStdout(), "Admin created:", email)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Admin already exists:", email)
			}
			return nil
		},
	}
	seed.Flags().StringVar(&email, "email", usecase.DefaultAdminEmail, "admin email")
	seed.Flags().StringVar(&password, "password", usecase.DefaultAdminPassword, "admin password")

	abandon := &cobra.Command{
		Use:   "abandon-match <match-id>",
		Short: "Mark a match that is not completed as ABANDONED",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := load(cmd.Context())
			if err != nil {
				return err
			}
			defer services.Close()

			out, err := services.AbandonMatch(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	recompute := &cobra.Command{
		Use:   "recompute-innings <innings-id>",
		Short: "Rebuild an innings aggregate from its delivery log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := load(cmd.Context())
			if err != nil {
				return err
			}
			defer services.Close()

			out, err := services.RecomputeInnings(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	root.AddCommand(seed, abandon, recompute)
	return root
}

func printJSON(w io.Writer, v any) error {
	body, err := sonic.ConfigDefault.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(body))
	return err
}

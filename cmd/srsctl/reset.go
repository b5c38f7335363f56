package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/myenglish-srs/internal/app"
	"github.com/heartmarshall/myenglish-srs/internal/service/study"
	"github.com/heartmarshall/myenglish-srs/pkg/ctxutil"
)

func newResetCommand() *cobra.Command {
	var (
		owner string
		yes   bool
	)

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all review sessions and activity of an owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := uuid.Parse(owner)
			if err != nil {
				return fmt.Errorf("--owner: %w", err)
			}
			if !yes {
				return fmt.Errorf("refusing to reset %s without --yes", ownerID)
			}

			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			store, err := app.OpenStorage(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer store.Close()

			svc := study.NewService(logger, store.Sessions, store.Activity, store.Stats, store.Settings, store.Tx, cfg.SRS)

			ctx := ctxutil.WithOwnerID(cmd.Context(), ownerID)
			res, err := svc.ResetAll(ctx)
			if err != nil {
				return fmt.Errorf("reset: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d sessions, %d activity events and %d days of stats\n",
				res.SessionsDeleted, res.EventsDeleted, res.DaysDeleted)
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "owner id (UUID)")
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	_ = cmd.MarkFlagRequired("owner")

	return cmd
}

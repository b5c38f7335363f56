package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/myenglish-srs/internal/auth"
	"github.com/heartmarshall/myenglish-srs/internal/domain"
)

func newTokenCommand() *cobra.Command {
	var (
		owner string
		role  string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token signed with the configured secret",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID := uuid.New()
			if owner != "" {
				var err error
				if ownerID, err = uuid.Parse(owner); err != nil {
					return fmt.Errorf("--owner: %w", err)
				}
			}

			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}

			tok, err := auth.NewJWTManager(cfg.Auth).Issue(ownerID, domain.UserRole(role))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "owner %s, role %s, valid for %s\n", ownerID, role, cfg.Auth.AccessTokenTTL)
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "owner id (UUID); random when empty")
	cmd.Flags().StringVar(&role, "role", string(domain.UserRoleUser), "role claim: user or admin")

	return cmd
}

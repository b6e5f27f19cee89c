package cli

import (
	"fmt"

	"restaurant-orders-api/config"

	"github.com/spf13/cobra"
)

func NewInitDBCommand() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "init-db",
		Short: "Create missing tables and seed categories, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if source != "" {
				cfg.DBSource = source
			}
			s, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer s.Close()
			fmt.Fprintf(cmd.OutOrStdout(), "schema ready in %s\n", cfg.DBSource)
			return nil
		},
	}
	cmd.Flags().StringVar(&source, "db", "", "database file (overrides DB_SOURCE)")
	return cmd
}

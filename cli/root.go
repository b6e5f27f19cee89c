package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for the service binary.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "restaurant-orders-api",
		Short:         "Restaurant order management backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewInitDBCommand())
	cmd.AddCommand(NewHashPasswordCommand())

	return cmd
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsaacod/Tugas3-EAI/internal/config"
	"github.com/tsaacod/Tugas3-EAI/internal/store"
)

// MigrateCmd creates the database schema and exits.
func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			st, err := store.Open(cfg.DatabaseURL)
			if err != nil {
				return err
			}
			if err := st.Migrate(); err != nil {
				return err
			}
			fmt.Println("Schema is up to date")
			return nil
		},
	}
}

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/avatars/internal/config"
	"github.com/ziadkadry99/avatars/internal/db"
	"github.com/ziadkadry99/avatars/internal/recolor"
	"github.com/ziadkadry99/avatars/internal/templates"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <character>",
	Short: "Remove an imported template from the database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return deleteTemplate(context.Background(), cfg, args[0], os.Stderr)
	},
}

// deleteTemplate removes the template for characterID from the database
// named by cfg.
func deleteTemplate(ctx context.Context, cfg *config.Config, characterID string, out io.Writer) error {
	key := recolor.SanitizeID(characterID)
	if key == "" {
		return fmt.Errorf("%w: %q", templates.ErrNotFound, characterID)
	}

	database, err := db.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	if err := templates.NewDBStore(database).Delete(ctx, key); err != nil {
		return err
	}
	fmt.Fprintf(out, "Deleted template %s from %s\n", key, database.Path())
	return nil
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

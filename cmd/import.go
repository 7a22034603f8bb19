package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/avatars/internal/db"
	"github.com/ziadkadry99/avatars/internal/progress"
	"github.com/ziadkadry99/avatars/internal/templates"
)

var importInclude []string

var importCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Validate SVG templates and load them into the database",
	Long: `Walks <dir> for SVG files matching --include, validates each one and
stores it in the SQLite database under its sanitized file name. Set
template_source: sqlite to serve the imported templates.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := db.Open(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		importer := templates.NewImporter(
			templates.NewDBStore(database),
			importInclude,
			progress.NewReporter("Importing templates"),
			cfg.Log.NewLogger(),
		)
		summary, err := importer.Import(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "Imported %d template(s) into %s\n", len(summary.Imported), database.Path())
		if len(summary.Skipped) > 0 {
			paths := make([]string, 0, len(summary.Skipped))
			for p := range summary.Skipped {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			fmt.Fprintf(os.Stderr, "Skipped %d file(s):\n", len(paths))
			for _, p := range paths {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", p, summary.Skipped[p])
			}
		}
		return nil
	},
}

func init() {
	importCmd.Flags().StringSliceVar(&importInclude, "include", templates.DefaultInclude, "glob patterns of files to import")
	rootCmd.AddCommand(importCmd)
}

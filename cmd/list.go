package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List characters that have an avatar template",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		svc, cleanup, err := buildService(cfg, cfg.Log.NewLogger(), false)
		if err != nil {
			return err
		}
		defer cleanup()

		keys, err := svc.List(context.Background())
		if err != nil {
			return err
		}
		for _, k := range keys {
			fmt.Println(k)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

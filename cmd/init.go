package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/avatars/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize avatars configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the avatar service and generates a .avatars.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

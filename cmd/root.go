package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/avatars/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "avatars",
	Short: "Recolored character avatars for the classroom",
	Long: `Avatars serves character avatars recolored with each student's chosen
palette. Templates are plain SVG files whose element ids mark the regions that
take the primary and secondary colors; darker shading variants are derived
automatically.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

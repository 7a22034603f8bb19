package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/avatars/internal/recolor"
)

// RunWizard runs an interactive configuration wizard and saves the result to
// path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to avatars! Let's configure the avatar service.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 2. Template source.
	sourcePrompt := promptui.Select{
		Label: "Where are avatar templates stored?",
		Items: []string{
			"dir    : one <character>.svg file per template in a directory",
			"sqlite : templates imported into the database with `avatars import`",
		},
	}
	sourceIdx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("template source: %w", err)
	}
	cfg.TemplateSource = []TemplateSource{SourceDir, SourceSQLite}[sourceIdx]

	// 3. Location.
	if cfg.TemplateSource == SourceDir {
		dirPrompt := promptui.Prompt{Label: "Template directory", Default: cfg.TemplateDir}
		if cfg.TemplateDir, err = dirPrompt.Run(); err != nil {
			return nil, fmt.Errorf("template dir: %w", err)
		}
	}
	dbPrompt := promptui.Prompt{Label: "Database path", Default: cfg.DatabasePath}
	if cfg.DatabasePath, err = dbPrompt.Run(); err != nil {
		return nil, fmt.Errorf("database path: %w", err)
	}

	// 4. Default palette.
	primaryPrompt := promptui.Prompt{Label: "Default primary color", Default: cfg.DefaultPrimary, Validate: validateColor}
	if cfg.DefaultPrimary, err = primaryPrompt.Run(); err != nil {
		return nil, fmt.Errorf("default primary: %w", err)
	}
	secondaryPrompt := promptui.Prompt{Label: "Default secondary color", Default: cfg.DefaultSecondary, Validate: validateColor}
	if cfg.DefaultSecondary, err = secondaryPrompt.Run(); err != nil {
		return nil, fmt.Errorf("default secondary: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	port, err := strconv.Atoi(s)
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("port must be a number between 0 and 65535")
	}
	return nil
}

func validateColor(s string) error {
	_, err := recolor.ParseHex(s)
	return err
}

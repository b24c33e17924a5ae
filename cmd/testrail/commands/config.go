package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	configDirPerm  = 0o700
	configFilePerm = 0o600
)

// Config represents the persisted CLI configuration.
type Config struct {
	URL    string `json:"url,omitempty"     yaml:"url,omitempty"`
	Email  string `json:"email,omitempty"   yaml:"email,omitempty"`
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	Output string `json:"output,omitempty"  yaml:"output,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage the persisted server address, credentials and output settings",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")

				return encoder.Encode(redacted(config))
			case OutputFormatYAML:
				encoder := yaml.NewEncoder(os.Stdout)

				return encoder.Encode(redacted(config))
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Setting", "Value")
				_ = table.Append("url", config.URL)
				_ = table.Append("email", config.Email)
				_ = table.Append("api-key", maskSecret(config.APIKey))
				_ = table.Append("output", config.Output)

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Valid keys: url, email, api-key, output",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if !validConfigKey(key) {
				return fmt.Errorf("unknown key '%s': %w", key, ErrUnknownConfigKey)
			}

			viper.Set(key, value)

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Set %s\n", key)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !validConfigKey(key) {
				return fmt.Errorf("unknown key '%s': %w", key, ErrUnknownConfigKey)
			}

			viper.Set(key, "")

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Unset %s\n", key)

			return nil
		},
	}
}

func validConfigKey(key string) bool {
	switch key {
	case "url", "email", "api-key", "output":
		return true
	}

	return false
}

func loadConfig() *Config {
	return &Config{
		URL:    viper.GetString("url"),
		Email:  viper.GetString("email"),
		APIKey: viper.GetString("api-key"),
		Output: viper.GetString("output"),
	}
}

func saveConfig() error {
	return saveConfigStruct(loadConfig())
}

func saveConfigStruct(config *Config) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, ".testrail")

		err = os.MkdirAll(configDir, configDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, configFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// redacted returns a copy of config safe for display.
func redacted(config *Config) *Config {
	clone := *config
	clone.APIKey = maskSecret(clone.APIKey)

	return &clone
}

func maskSecret(secret string) string {
	if secret == "" {
		return ""
	}

	const visible = 4
	if len(secret) <= visible {
		return "****"
	}

	return "****" + secret[len(secret)-visible:]
}

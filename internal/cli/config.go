package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ConfigVersion is the current version of the config file format
const ConfigVersion = "0.1.0"

// envServerURL overrides the configured backend when set. Useful for
// pointing the console at a staging backend without touching the config
// file.
const envServerURL = "LLMADMIN_SERVER_URL"

// Config represents the structure of the llmadmin configuration file
type Config struct {
	Version   string `yaml:"version"`
	ServerURL string `yaml:"server_url"`
}

var currentConfig *Config

// GetConfig returns the current loaded config
func GetConfig() *Config {
	if currentConfig == nil {
		return &Config{Version: ConfigVersion}
	}
	return currentConfig
}

// GetServerURL returns the backend base URL, letting the environment
// override the config file.
func (c *Config) GetServerURL() string {
	if url := os.Getenv(envServerURL); url != "" {
		return strings.TrimSuffix(url, "/")
	}
	return strings.TrimSuffix(c.ServerURL, "/")
}

// GetDefaultConfigPath returns the default path for the config file
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("unable to determine user config directory: %w", err)
	}
	return filepath.Join(configDir, "llmadmin", "config.yaml"), nil
}

// LoadConfig reads the config file from the given path. A .env file in
// the working directory is loaded first so LLMADMIN_SERVER_URL can be
// kept alongside a project.
func LoadConfig(path string) error {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("unable to parse config file: %w", err)
	}

	if cfg.ServerURL == "" && os.Getenv(envServerURL) == "" {
		return fmt.Errorf("config file does not specify a server URL")
	}

	currentConfig = &cfg
	return nil
}

// SaveConfig writes the config to the given path, creating the parent
// directory if needed.
func SaveConfig(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("unable to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("unable to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("unable to write config file: %w", err)
	}
	return nil
}

var configServerURL string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure the llmadmin console",
	Long: `Configure the llmadmin console.

Without flags, prints the current configuration. With --server, writes
the backend URL to the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFile
		if path == "" {
			var err error
			path, err = GetDefaultConfigPath()
			if err != nil {
				return err
			}
		}

		if configServerURL == "" {
			if err := LoadConfig(path); err != nil {
				if os.IsNotExist(err) {
					fmt.Println("No configuration found. Set one with \"llmadmin config --server <url>\".")
					return nil
				}
				return err
			}
			cfg := GetConfig()
			if jsonOutput {
				printJSON(cfg)
			} else {
				fmt.Printf("Config file: %s\n", path)
				fmt.Printf("Server URL:  %s\n", cfg.GetServerURL())
			}
			return nil
		}

		cfg := &Config{
			Version:   ConfigVersion,
			ServerURL: strings.TrimSuffix(configServerURL, "/"),
		}
		if err := SaveConfig(path, cfg); err != nil {
			return err
		}
		currentConfig = cfg
		okLabel.Printf("Configuration saved to %s\n", path)
		return nil
	},
}

func init() {
	configCmd.Flags().StringVar(&configServerURL, "server", "", "Backend server URL")
	rootCmd.AddCommand(configCmd)
}

package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dshills/lumiwidgets/pkg/behavior"
)

const (
	// Version is the current version of lumiwidgets
	Version = "1.0.0"

	// configDirEnv overrides the configuration directory (used by tests)
	configDirEnv = "LUMIWIDGETS_CONFIG_DIR"
)

// Config holds the global configuration for the lumiwidgets CLI
type Config struct {
	ConfigDir string
	Debug     bool
}

// GlobalConfig is the shared configuration instance
var GlobalConfig = &Config{}

// FileConfig is the content of config.yaml
type FileConfig struct {
	Version string `yaml:"version"`
	// GateExpression decides when populated_text is disabled; see behavior.DefaultGateExpression
	GateExpression string `yaml:"gate_expression,omitempty"`
}

// NewRootCommand creates the root cobra command for lumiwidgets
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lumiwidgets",
		Short: "lumiwidgets - widget behavior for the Lumi prompt nodes",
		Long: `lumiwidgets drives the widget behavior of the Lumi wildcard prompt nodes:
backend feedback onto widget values, mode-gated editing of the populated
prompt, and wildcard / LoRA pickers that append to the prompt text.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Initialize configuration
			if err := initConfig(); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}

			// Setup logging
			if GlobalConfig.Debug {
				log.SetOutput(os.Stderr)
				log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
			} else {
				log.SetOutput(io.Discard)
			}

			return nil
		},
	}

	// Persistent flags (available to all subcommands)
	cmd.PersistentFlags().BoolVar(&GlobalConfig.Debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&GlobalConfig.ConfigDir, "config-dir", "", "Configuration directory (default: ~/.lumiwidgets)")

	// Add subcommands
	cmd.AddCommand(NewNodesCommand())
	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewReplayCommand())

	return cmd
}

// initConfig initializes the configuration directory and files
func initConfig() error {
	// Environment variable always takes priority (for testing)
	if envDir := os.Getenv(configDirEnv); envDir != "" {
		GlobalConfig.ConfigDir = envDir
	} else if GlobalConfig.ConfigDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}
		GlobalConfig.ConfigDir = filepath.Join(homeDir, ".lumiwidgets")
	}

	if err := os.MkdirAll(GetNodeDefsDir(), 0755); err != nil {
		return fmt.Errorf("failed to create node definitions directory: %w", err)
	}

	// Load or create config file
	configFile := GetConfigFilePath()
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		data, err := yaml.Marshal(FileConfig{Version: "1.0"})
		if err != nil {
			return fmt.Errorf("failed to marshal default config: %w", err)
		}
		if err := os.WriteFile(configFile, data, 0644); err != nil {
			return fmt.Errorf("failed to write default config: %w", err)
		}
	}

	return nil
}

// GetConfigDir returns the configuration directory path
// Priority order: 1) LUMIWIDGETS_CONFIG_DIR env var, 2) GlobalConfig.ConfigDir, 3) ~/.lumiwidgets
func GetConfigDir() string {
	if envDir := os.Getenv(configDirEnv); envDir != "" {
		return envDir
	}
	if GlobalConfig.ConfigDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to current directory if home dir cannot be determined
			return ".lumiwidgets"
		}
		return filepath.Join(homeDir, ".lumiwidgets")
	}
	return GlobalConfig.ConfigDir
}

// GetNodeDefsDir returns the directory of extra node definition files
func GetNodeDefsDir() string {
	return filepath.Join(GetConfigDir(), "nodedefs")
}

// GetConfigFilePath returns the path to config.yaml
func GetConfigFilePath() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// LoadFileConfig reads config.yaml. A missing file yields the defaults.
func LoadFileConfig() (*FileConfig, error) {
	cfg := &FileConfig{Version: "1.0"}

	data, err := os.ReadFile(GetConfigFilePath())
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// gateRule compiles the configured gate expression, or returns the default rule.
func (c *FileConfig) gateRule() (*behavior.GateRule, error) {
	if c.GateExpression == "" {
		return behavior.DefaultGateRule(), nil
	}
	rule, err := behavior.CompileGateRule(c.GateExpression)
	if err != nil {
		return nil, fmt.Errorf("config gate_expression: %w", err)
	}
	return rule, nil
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

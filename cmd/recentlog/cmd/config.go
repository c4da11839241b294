package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yarp-shell/recentlog/configs"
	"github.com/yarp-shell/recentlog/internal/config"
	"github.com/yarp-shell/recentlog/internal/errors"
	"github.com/yarp-shell/recentlog/internal/output"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user configuration",
		Long: `Manage the optional user configuration file.

Configuration precedence (lowest to highest):
  1. Hardcoded defaults
  2. User config (~/.config/recentlog/config.yaml or config.toml)
  3. Environment variables (RECENTLOG_*)
  4. Command line flags (--dir, --pattern, --debug)`,
		Example: `  # Create user config from template
  recentlog config init

  # Show effective configuration
  recentlog config show

  # Print user config file path
  recentlog config path`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd(opts))
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create user configuration file",
		Long: `Create the user configuration file from a template.

The file is created at ~/.config/recentlog/config.yaml
(or $XDG_CONFIG_HOME/recentlog/config.yaml if XDG_CONFIG_HOME is set).
With --force an existing file is backed up before being replaced.`,
		Example: `  recentlog config init
  recentlog config init --force`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Back up and overwrite an existing configuration")

	return cmd
}

func newConfigShowCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Long: `Show the effective configuration after merging defaults, the user
config file, environment variables and flags.`,
		Example: `  recentlog config show
  recentlog config show --json`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd, opts, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print user config file path",
		Long:  `Print the path to the user configuration file.`,
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), config.GetUserConfigPath())
			return err
		},
	}
}

func runConfigInit(cmd *cobra.Command, force bool) error {
	out := output.New(cmd.OutOrStdout())

	configDir := config.GetUserConfigDir()
	configPath := filepath.Join(configDir, "config.yaml")

	var backupPath string
	if config.UserConfigExists() {
		if !force {
			out.Warning("User configuration already exists")
			out.Statusf("📁", "Location: %s", config.GetUserConfigPath())
			out.Newline()
			out.Status("💡", "Use --force to replace it (a backup is kept)")
			return nil
		}

		var err error
		backupPath, err = config.BackupUserConfig()
		if err != nil {
			return errors.ConfigError("failed to backup config", err)
		}
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return errors.ConfigError(
			fmt.Sprintf("failed to create config directory %s", configDir), err)
	}
	if err := os.WriteFile(configPath, []byte(configs.UserConfigTemplate), 0o644); err != nil {
		return errors.ConfigError("failed to write config file", err)
	}

	out.Success("Created user configuration")
	out.Statusf("📁", "Location: %s", configPath)
	if backupPath != "" {
		out.Statusf("💾", "Backup: %s", backupPath)
		if backups, err := config.ListUserConfigBackups(); err == nil {
			out.Statusf("", "%d backup(s) kept, oldest removed beyond %d", len(backups), config.MaxBackups)
		}
	}
	out.Newline()
	out.Status("📋", "Next steps:")
	out.Status("", "  1. Edit the file to customize settings")
	out.Status("", "  2. Run 'recentlog config show' to verify")

	return nil
}

func runConfigShow(cmd *cobra.Command, opts *rootOptions, jsonOutput bool) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	}

	source := "defaults"
	switch {
	case opts.configPath != "":
		source = opts.configPath
	case config.UserConfigExists():
		source = config.GetUserConfigPath()
	}

	out := output.New(cmd.OutOrStdout())
	out.Statusf("📋", "Configuration source: %s (+ env, flags)", source)
	out.Newline()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.InternalError("failed to marshal config", err)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
	return err
}

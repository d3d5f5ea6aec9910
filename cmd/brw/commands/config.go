package commands

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/browserware/brw/internal/config"
	brwerrors "github.com/browserware/brw/internal/errors"
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configCheckCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage brw configuration",
	Long: `Manage brw configuration stored in $XDG_CONFIG_HOME/brw/config.yaml.

Without a subcommand, shows the effective configuration.`,
	Example: `  # Show the effective configuration
  brw config show

  # Validate the configuration file
  brw config check`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Show the effective configuration in YAML format.

Values come from the config file, BRW_* environment variables, and
built-in defaults, in that order of precedence.`,
	Example: `  # Show the effective configuration
  brw config show`,
	RunE: runConfigShow,
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration",
	Long: `Load the configuration and report every validation problem found.

Exits non-zero when the configuration is invalid.`,
	Example: `  # Validate the configuration file
  brw config check`,
	RunE: runConfigCheck,
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	return runConfigShowWithWriter(cmd.OutOrStdout())
}

// runConfigShowWithWriter allows injecting a writer for testing.
func runConfigShowWithWriter(w io.Writer) error {
	// Build config structure from viper
	cfg := map[string]any{
		"version":    viper.GetInt("version"),
		"format":     viper.GetString("format"),
		"log_format": viper.GetString("log_format"),
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	fmt.Fprint(w, string(data))
	return nil
}

func runConfigCheck(cmd *cobra.Command, _ []string) error {
	return runConfigCheckWithWriter(cmd.OutOrStdout())
}

// runConfigCheckWithWriter allows injecting a writer for testing.
func runConfigCheckWithWriter(w io.Writer) error {
	cfg, err := config.Load("")
	if err != nil {
		return brwerrors.NewConfigError(err)
	}

	errs := config.Validate(cfg)
	if len(errs) == 0 {
		fmt.Fprintln(w, "Configuration OK")
		return nil
	}

	for _, e := range errs {
		fmt.Fprintf(w, "  %s\n", e)
	}
	return brwerrors.NewUserError(brwerrors.ErrInvalidConfig,
		"Fix the problems above in your config file")
}

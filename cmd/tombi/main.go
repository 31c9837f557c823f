// Command tombi is the CLI surface spec.md §6.2 describes: format,
// lint and lsp subcommands over a TOML document, built with
// github.com/spf13/cobra the way aledsdavies-opal/cli and
// opal-lang-opal build their own command trees (robfig-soy itself
// carries no CLI of its own — its binary surface is the soyweb HTTP
// dev server — so the cobra convention is adopted from the rest of
// the pack rather than the teacher).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tombi-toml/tombi/config"
	"github.com/tombi-toml/tombi/syntax"
)

// globalFlags holds the flags shared across every subcommand,
// resolved once in PersistentPreRunE into a config.Config by merging
// the config file (if any) under the explicit CLI flags, per
// config.Config.Merge's file-under-flags precedence.
type globalFlags struct {
	tomlVersion string
	configPath  string
}

func main() {
	os.Exit(run())
}

func run() int {
	flags := &globalFlags{}
	var cfg config.Config

	root := &cobra.Command{
		Use:           "tombi",
		Short:         "A TOML toolchain: format, lint and language server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := resolveConfig(flags)
			if err != nil {
				return withExitCode(err, exitUsage)
			}
			cfg = resolved
			return nil
		},
	}
	root.PersistentFlags().StringVar(&flags.tomlVersion, "toml-version", "", `TOML grammar version ("v1.0.0" or "v1.1.0-preview")`)
	root.PersistentFlags().StringVar(&flags.configPath, "config", "tombi.toml", "path to the configuration file")

	root.AddCommand(newFormatCmd(&cfg))
	root.AddCommand(newLintCmd(&cfg))
	root.AddCommand(newLspCmd(&cfg))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tombi:", err)
		return exitCodeOf(err)
	}
	return exitSuccess
}

// resolveConfig merges config.Default(), the config file at
// flags.configPath (silently skipped if it doesn't exist — the
// configuration file is always optional, per spec.md §6.3), and the
// --toml-version flag, in that increasing-precedence order.
func resolveConfig(flags *globalFlags) (config.Config, error) {
	cfg := config.Default()

	if _, err := os.Stat(flags.configPath); err == nil {
		fileCfg, fileSet, diags, err := config.Load(flags.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Merge(&fileCfg, fileSet)
		for _, d := range diags {
			fmt.Fprintln(os.Stderr, d.Error())
		}
	}

	if flags.tomlVersion != "" {
		v, ok := syntax.ParseTomlVersion(flags.tomlVersion)
		if !ok {
			return config.Config{}, fmt.Errorf("invalid --toml-version %q", flags.tomlVersion)
		}
		cfg.TomlVersion = v
	}
	return cfg, nil
}

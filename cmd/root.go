package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/brickster241/repoversion/porcelain"
	"github.com/brickster241/repoversion/utils"
	"github.com/brickster241/repoversion/utils/constants"
	"github.com/brickster241/repoversion/utils/types"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

var errInfoUnavailable = errors.New("repository info unavailable")

// configuration is loaded from defaults, an optional YAML file, REPOVERSION_* variables and flags.
type configuration struct {
	LogLevel  string        `mapstructure:"log_level"`
	LogFormat string        `mapstructure:"log_format"`
	MaxAge    time.Duration `mapstructure:"max_age"`
	NoCache   bool          `mapstructure:"no_cache"`
	Output    string        `mapstructure:"output"`
}

var configurationDefaults = map[string]any{
	"log_level":  string(utils.LogLevelError),
	"log_format": string(utils.LogFormatConsole),
	"max_age":    constants.DefaultMaxAge,
	"no_cache":   false,
	"output":     outputText,
}

// newRootCommand builds the cobra command printing repository info to out.
func newRootCommand(out io.Writer) *cobra.Command {
	var configPath string
	loader := utils.NewConfigurationLoader("repoversion", "yaml", "REPOVERSION", []string{"."})

	cmd := &cobra.Command{
		Use:           "repoversion [path]",
		Short:         "Print branch, commit hash and commit count of a Git repository",
		Long:          "repoversion reads HEAD, the branch ref and the loose commit objects of a repository directly, without running git.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg configuration
			if _, err := loader.Load(configPath, configurationDefaults, &cfg); err != nil {
				return err
			}
			applyFlagOverrides(cmd.Flags(), &cfg)

			logger, err := utils.NewLoggerFactory().CreateLogger(utils.LogLevel(cfg.LogLevel), utils.LogFormat(cfg.LogFormat))
			if err != nil {
				return fmt.Errorf("unable to create logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			repoPath := "."
			if len(args) == 1 {
				repoPath = args[0]
			}

			maxAge := cfg.MaxAge
			if cfg.NoCache {
				maxAge = constants.NeverCache
			}
			logger.Debug("inspecting repository", zap.String("repo_path", repoPath), zap.Duration("max_age", maxAge))

			info := porcelain.NewInspector(logger, nil).RepoInfoCached(repoPath, maxAge)
			if info == nil {
				return errInfoUnavailable
			}
			return writeInfo(out, cfg.Output, *info)
		},
	}

	cmd.AddCommand(newCatFileCommand(out))

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "Optional path to a YAML configuration file.")
	flags.String("log-level", "", "Log level (debug, info, warn, error).")
	flags.String("log-format", "", "Log format (structured or console).")
	flags.Duration("max-age", 0, "Maximum age of a cached snapshot.")
	flags.Bool("no-cache", false, "Always recompute, ignoring the snapshot cache.")
	flags.StringP("output", "o", "", "Output format (text, json or yaml).")

	return cmd
}

// applyFlagOverrides copies explicitly set flags over the loaded configuration.
func applyFlagOverrides(flags *pflag.FlagSet, cfg *configuration) {
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
	if flags.Changed("max-age") {
		cfg.MaxAge, _ = flags.GetDuration("max-age")
	}
	if flags.Changed("no-cache") {
		cfg.NoCache, _ = flags.GetBool("no-cache")
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
}

// writeInfo renders info in the requested format.
func writeInfo(w io.Writer, format string, info types.RepoInfo) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(info); err != nil {
			return err
		}
		return enc.Close()
	case outputText, "":
		fields := []struct{ label, value string }{
			{"branch", info.Branch},
			{"branch ref", info.BranchRef},
			{"hash", info.Hash},
			{"short hash", info.ShortHash},
			{"commits", fmt.Sprint(info.Commits)},
			{"version", info.Version()},
		}
		for _, f := range fields {
			if err := utils.PrintField(w, f.label, f.value); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

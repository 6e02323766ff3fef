package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/BeatGlow/pixelsort/internal/config"
	"github.com/BeatGlow/pixelsort/internal/logging"
)

// globalFlags are the persistent flags shared by all commands.
type globalFlags struct {
	config    string
	verbosity int
	quiet     bool
}

func newRootCommand() *cobra.Command {
	var global globalFlags

	cmd := &cobra.Command{
		Use:   "pixelsort",
		Short: "Sort the pixels of an image",
		Long: `pixelsort sorts contiguous runs of pixels along the rows or columns of an image.

Only pixels whose luminance lies within the threshold take part in sorting; they are
ordered by the selected method while every other pixel stays in place.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&global.config, "config", "", "Config file (default: pixelsort.{yaml,toml,json} in . or the user config directory)")
	flags.CountVarP(&global.verbosity, "verbose", "v", "Increase log verbosity (repeatable)")
	flags.BoolVarP(&global.quiet, "quiet", "q", false, "Suppress all log output")
	flags.String("log-format", "human", "Log format (human, json)")

	cmd.AddCommand(
		newSortCommand(&global),
		newSweepCommand(&global),
		newMethodsCommand(),
		newFormatsCommand(),
		newConfigCommand(&global),
	)
	return cmd
}

// setup loads the configuration with the named flags of cmd bound to their config keys, and
// builds the logger.
func (g *globalFlags) setup(cmd *cobra.Command, bindings map[string]string) (*config.Config, *slog.Logger, error) {
	v := config.New()

	bindings["log.format"] = "log-format"
	for key, name := range bindings {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			return nil, nil, fmt.Errorf("no flag %q for %s", name, key)
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, nil, err
		}
	}

	cfg, err := config.Load(v, g.config)
	if err != nil {
		return nil, nil, err
	}

	level := logging.LevelFromVerbosity(logging.LevelFromString(cfg.Log.Level), g.verbosity, g.quiet)
	log, err := logging.New(cmd.ErrOrStderr(), level, cfg.Log.Format)
	if err != nil {
		return nil, nil, &config.ConfigError{Field: "log.format", Message: err.Error()}
	}
	if used := v.ConfigFileUsed(); used != "" {
		log.Debug("Loaded config file", "path", used)
	}
	return cfg, log, nil
}

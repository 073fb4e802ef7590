package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-qrform/internal/config"
	"github.com/goliatone/go-qrform/pkg/generator"
	"github.com/goliatone/go-qrform/pkg/model"
)

// app carries global flags and the state built from them before a command
// runs.
type app struct {
	configPath string
	envPath    string
	format     string
	output     string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "qrform",
		Short: "Build contact-card barcode payloads",
		Long: `qrform collects contact details, validates them field by field and
prints the MeCard (or vCard) text a barcode encoder expects.

Run without a subcommand to use the renderer named in the configuration.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRenderer(cmd, a.cfg.Renderer, nil)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.StringVar(&a.envPath, "env-file", ".env", "dotenv file with QRFORM_* overrides")
	flags.StringVar(&a.format, "format", "", "payload format: mecard or vcard")
	flags.StringVarP(&a.output, "output", "o", "", "output file (stdout if empty)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newContactCmd(a),
		newPromptCmd(a),
		newInteractiveCmd(a),
		newFormCmd(a),
		newValidateCmd(a),
	)
	return root
}

// init loads configuration in increasing priority: defaults, config file,
// dotenv and environment, flags.
func (a *app) init(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(a.envPath); err != nil {
		return err
	}

	var paths []string
	if home, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(home, "qrform", "config.yaml"))
	}
	paths = append(paths, a.configPath)

	cfg, err := config.LoadLayered(paths...)
	if err != nil {
		return err
	}
	cfg.ApplyEnv()

	if cmd.Flags().Changed("format") {
		cfg.Output.Format = a.format
	}
	if cmd.Flags().Changed("output") {
		cfg.Output.Path = a.output
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	zcfg := zap.NewProductionConfig()
	if a.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	a.logger.Debug("configuration loaded",
		zap.String("format", cfg.Output.Format),
		zap.String("renderer", cfg.Renderer),
		zap.Bool("strict_empty_url", cfg.Validation.StrictEmptyURL))
	return nil
}

// newGenerator builds a contact generator from the loaded configuration.
func (a *app) newGenerator() *generator.Contact {
	labels := make(map[model.FieldID]string, len(a.cfg.Labels))
	for id, label := range a.cfg.Labels {
		labels[model.FieldID(strings.ToLower(strings.TrimSpace(id)))] = label
	}
	return generator.NewContact(
		generator.WithLogger(a.logger),
		generator.WithFormat(a.cfg.Format()),
		generator.WithStrictEmptyURL(a.cfg.Validation.StrictEmptyURL),
		generator.WithLabels(labels),
	)
}

// write sends data to the configured output path or the command's stdout.
func (a *app) write(cmd *cobra.Command, data []byte) error {
	path := a.cfg.Output.Path
	if path == "" {
		out := cmd.OutOrStdout()
		if _, err := out.Write(data); err != nil {
			return err
		}
		if len(data) > 0 && data[len(data)-1] != '\n' {
			_, err := fmt.Fprintln(out)
			return err
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Written to %s\n", path)
	return nil
}

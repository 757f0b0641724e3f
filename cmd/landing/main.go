package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/coursemind/landing-forms/config"
	"github.com/coursemind/landing-forms/internal/repository"
	"github.com/coursemind/landing-forms/internal/storage"
	"github.com/coursemind/landing-forms/internal/terminal"
	"github.com/coursemind/landing-forms/pkg/logger"
)

// app is what every command needs once configuration is loaded
type app struct {
	cfg      *config.Config
	store    storage.Store
	repo     *repository.SubmissionRepository
	out      io.Writer
	prompter terminal.Prompter
}

var (
	current      = &app{out: os.Stdout}
	printMetrics bool
)

var rootCmd = &cobra.Command{
	Use:   "landing",
	Short: "CourseMind landing page forms",
	Long: `Fill in the consultation and demo request forms of the CourseMind landing page.

Nothing is sent anywhere: the last submission of each form is kept in a local store
and shown again the next time the forms are opened.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return teardown(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&printMetrics, "print-metrics", false, "print form and storage metrics on exit")

	consultCmd.Flags().StringToStringP("field", "f", nil, "submit once with these field values instead of prompting (role, channel, contact, time, comment)")
	demoCmd.Flags().StringToStringP("field", "f", nil, "submit once with these field values instead of prompting (name, email, status, message)")

	rootCmd.AddCommand(consultCmd, demoCmd, showCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logger.Initialize(loggerConfig(cfg)); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	store, err := storage.Open(cmd.Context(), cfg.Storage)
	if err != nil {
		logger.Error("Failed to open storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
		return err
	}

	logger.Debug("Storage opened",
		zap.String("driver", cfg.Storage.Driver),
		zap.String("environment", cfg.App.Env),
	)

	current.cfg = cfg
	current.store = store
	current.repo = repository.NewSubmissionRepository(store)
	current.out = cmd.OutOrStdout()
	current.prompter = terminal.NewSurveyPrompter()
	return nil
}

// loggerConfig keeps file logging to production; other environments log to stderr
func loggerConfig(cfg *config.Config) logger.Config {
	lc := logger.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.IsDevelopment(),
	}
	if cfg.IsProduction() {
		lc.LogDir = cfg.Logging.Dir
	}
	return lc
}

func teardown(out io.Writer) error {
	defer logger.Sync()

	if printMetrics {
		if err := writeMetrics(out); err != nil {
			logger.LogError(err, "Failed to gather metrics")
		}
	}
	if current.store != nil {
		return current.store.Close()
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

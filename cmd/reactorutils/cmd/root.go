package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bastawesy/reactorutils/core/config"
	"github.com/bastawesy/reactorutils/core/i18n"
	rulog "github.com/bastawesy/reactorutils/core/log"
	"github.com/bastawesy/reactorutils/utils/timex"
)

// app holds what the subcommands share, built before any of them runs
type app struct {
	cfgFile string
	locale  string
	verbose bool

	config    *config.Config
	logger    *rulog.Logger
	logCloser io.Closer
	bundle    *i18n.Bundle
	validator *timex.Validator
	styles    styles
}

// Execute runs the CLI. Errors not already shown by a command are printed
// to stderr.
func Execute() error {
	a := &app{}
	defer a.close()

	err := newRootCmd(a).Execute()
	var shown *shownError
	if err != nil && !errors.As(err, &shown) {
		printError(err)
	}
	return err
}

func newRootCmd(a *app) *cobra.Command {

	root := &cobra.Command{
		Use:   "reactorutils",
		Short: "Date conversion, validation and message lookup",
		Long: `reactorutils exposes the utility layer of the quota service:

  convert   - epoch milliseconds as date, calendar date and local date-time
  bounds    - start and end of today and of days around it
  validate  - strict date range and future checks with localized messages
  message   - resolve a message key from the bundle
  version   - module and package versions`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context(), cmd.OutOrStdout())
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Config file (TOML or YAML)")
	root.PersistentFlags().StringVar(&a.locale, "locale", "", "Message locale, overrides general.locale")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose output")

	root.AddCommand(
		newConvertCmd(a),
		newBoundsCmd(a),
		newValidateCmd(a),
		newMessageCmd(a),
		newVersionCmd(a),
	)
	return root
}

func (a *app) setup(ctx context.Context, out io.Writer) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.locale != "" {
		locale, err := i18n.ParseLocale(a.locale)
		if err != nil {
			return err
		}
		cfg.General.Locale = locale
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}

	logger, closer, err := cfg.Log.NewLogger()
	if err != nil {
		return err
	}

	bundle, err := cfg.I18n.NewBundle(ctx, logger)
	if err != nil {
		closer.Close()
		return err
	}

	a.config = cfg
	a.logger = logger.WithName(cfg.General.AppName)
	a.logCloser = closer
	a.bundle = bundle
	a.validator = timex.NewValidatorWithOptions(timex.ValidatorOptions{
		Resolver: bundle,
		Locale:   cfg.General.Locale,
		Logger:   logger,
	})
	a.styles = newStyles(out)

	a.logger.Debug("cli ready", rulog.Fields{
		"locale":  cfg.General.Locale,
		"bundle":  bundle.String(),
		"config":  a.cfgFile,
		"verbose": a.verbose,
	})
	return nil
}

// close releases the log output. It runs whether or not the command
// failed.
func (a *app) close() error {
	if a.logCloser == nil {
		return nil
	}
	err := a.logCloser.Close()
	a.logCloser = nil
	return err
}

// shownError marks an error that was already printed by a command
type shownError struct {
	err error
}

func (e *shownError) Error() string { return e.err.Error() }

func (e *shownError) Unwrap() error { return e.err }

// fail prints err in the error style and returns it for the exit status
func (a *app) fail(out io.Writer, err error) error {
	fmt.Fprintln(out, a.styles.err.Render("FAIL "+err.Error()))
	return &shownError{err: err}
}

func printError(err error) {
	s := newStyles(os.Stderr)
	fmt.Fprintln(os.Stderr, s.err.Render("Error: "+err.Error()))
}

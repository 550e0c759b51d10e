package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bastawesy/reactorutils/core/i18n"
)

func newValidateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Runs the date validations",
		Long: `Runs the strict date validations used by the quota service. A failed
check prints the localized message and exits with status 1.`,
	}

	var (
		rangeKey    string
		rangeParams []string
	)
	rangeCmd := &cobra.Command{
		Use:   "range <from-millis> <to-millis>",
		Short: "Checks that from is strictly before to",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			from, err := parseMillis(args[0])
			if err != nil {
				return a.fail(out, err)
			}
			to, err := parseMillis(args[1])
			if err != nil {
				return a.fail(out, err)
			}
			err = a.validator.ValidateDateFromAndDateTo(from, to, rangeKey, toParams(rangeParams, "from", "to")...)
			return a.report(out, err)
		},
	}
	rangeCmd.Flags().StringVarP(&rangeKey, "key", "k", i18n.KeyFirstDateShouldBeBeforeSecondDate, "Message key reported on failure")
	rangeCmd.Flags().StringSliceVarP(&rangeParams, "param", "p", nil, "Message parameters (default: from,to)")

	var (
		futureKey    string
		futureParams []string
	)
	futureCmd := &cobra.Command{
		Use:   "future <epoch-millis>",
		Short: "Checks that the instant is strictly after now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			ms, err := parseMillis(args[0])
			if err != nil {
				return a.fail(out, err)
			}
			err = a.validator.ValidateDateInTheFuture(ms, futureKey, toParams(futureParams, "date")...)
			return a.report(out, err)
		},
	}
	futureCmd.Flags().StringVarP(&futureKey, "key", "k", i18n.KeyDateShouldBeInTheFuture, "Message key reported on failure")
	futureCmd.Flags().StringSliceVarP(&futureParams, "param", "p", nil, "Message parameters (default: date)")

	cmd.AddCommand(rangeCmd, futureCmd)
	return cmd
}

func (a *app) report(out io.Writer, err error) error {
	if err != nil {
		return a.fail(out, err)
	}
	fmt.Fprintln(out, a.styles.ok.Render("OK"))
	return nil
}

func toParams(values []string, defaults ...string) []any {
	if len(values) == 0 {
		values = defaults
	}
	params := make([]any, len(values))
	for i, v := range values {
		params[i] = v
	}
	return params
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newMessageCmd(a *app) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "message <key> [params...]",
		Short: "Resolves a message key in the configured locale",
		Args: func(cmd *cobra.Command, args []string) error {
			if list {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			s := a.styles

			if list {
				fmt.Fprintln(out, s.title.Render("Locales: "+strings.Join(a.bundle.Locales(), ", ")))
				for _, key := range a.bundle.Keys() {
					fmt.Fprintln(out, key)
				}
				return nil
			}

			params := make([]any, 0, len(args)-1)
			for _, p := range args[1:] {
				params = append(params, p)
			}
			text, err := a.bundle.Resolve(args[0], a.validator.Locale(), params...)
			if err != nil {
				return a.fail(out, err)
			}
			fmt.Fprintln(out, text)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, "List the loaded locales and keys")
	return cmd
}

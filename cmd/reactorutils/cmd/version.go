package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bastawesy/reactorutils/pkg/version"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Shows the module and package versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			s := a.styles
			fmt.Fprintln(out, s.title.Render("reactorutils "+version.Module))
			for _, name := range version.Packages {
				s.row(out, name, version.PackageVersion(name))
			}
			return nil
		},
	}
}

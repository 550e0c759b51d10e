package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newBoundsCmd(a *app) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "bounds",
		Short: "Shows the start and end of today and of days around it",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			v := a.validator
			s := a.styles

			fmt.Fprintln(out, s.title.Render("Day bounds in "+time.Local.String()))
			s.row(out, "Now", millisText(v.Now().UnixMilli()))
			s.row(out, "Today start", millisText(v.TodayMinTime()))
			s.row(out, "Today end", millisText(v.TodayMaxTime()))
			if days != 0 {
				s.row(out, fmt.Sprintf("Today+%d start", days), millisText(v.MinTimeOfNowIncrementedByNumOfDays(days)))
				s.row(out, fmt.Sprintf("Today+%d end", days), millisText(v.MaxTimeOfNowIncrementedByNumOfDays(days)))
				s.row(out, fmt.Sprintf("Today-%d start", days), millisText(v.MinTimeOfNowDecrementedByNumOfDays(days)))
				s.row(out, fmt.Sprintf("Today-%d end", days), millisText(v.MaxTimeOfNowDecrementedByNumOfDays(days)))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 0, "Also show the bounds this many days ahead and back")
	return cmd
}

func millisText(ms int64) string {
	return fmt.Sprintf("%d  (%s)", ms, time.UnixMilli(ms).Format(displayLayout))
}

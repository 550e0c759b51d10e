package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	ruerror "github.com/bastawesy/reactorutils/core/error"
	"github.com/bastawesy/reactorutils/utils/timex"
)

const displayLayout = "2006-01-02 15:04:05.000 MST"

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <epoch-millis>",
		Short: "Shows epoch milliseconds in every date representation",
		Long: `Converts epoch milliseconds into an instant, a calendar date and a
local date-time in the system time zone, and shows the epoch day number
and epoch seconds derived from them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(a, cmd, args)
		},
	}
}

func runConvert(a *app, cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	ms, err := parseMillis(args[0])
	if err != nil {
		return a.fail(out, err)
	}

	date := timex.EpochMillisToDate(ms)
	calendarDate := timex.EpochMillisToCalendarDate(ms)
	localDateTime := timex.EpochMillisToLocalDateTime(ms)

	s := a.styles
	fmt.Fprintln(out, s.title.Render("Conversion of "+args[0]))
	s.row(out, "Time zone", time.Local.String())
	s.row(out, "Date", date.Format(displayLayout))
	s.row(out, "Calendar date", calendarDate.String())
	s.row(out, "Local date-time", localDateTime.String())
	s.row(out, "Epoch day number", *timex.CalendarDateToEpochDayNumber(calendarDate))
	s.row(out, "Epoch seconds", *timex.LocalDateTimeToEpochSeconds(localDateTime))
	s.row(out, "Epoch millis", *timex.DateToEpochMillis(date))
	return nil
}

func parseMillis(value string) (*int64, error) {
	ms, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, ruerror.Wrap(err, "epoch milliseconds must be an integer").
			WithCode(ruerror.CodeInvalidArgument).
			WithOperation("cli.parseMillis").
			WithDetail("value", value)
	}
	return &ms, nil
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/overtime"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/timesheet"
	overtimeService "github.com/cmlabs-hris/overtime-backend-go/internal/service/overtime"
	"github.com/spf13/cobra"
)

const appVersion = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "overtime",
		Short:         "Overtime checker for attendance timesheets",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ok, _ := cmd.Flags().GetBool("version"); ok {
				fmt.Fprintln(cmd.OutOrStdout(), "overtime", appVersion)
				return nil
			}
			return cmd.Help()
		},
	}
	cmd.Flags().BoolP("version", "v", false, "Show version and exit")

	cmd.AddCommand(newReportCmd())
	return cmd
}

func newReportCmd() *cobra.Command {
	var showDays bool

	cmd := &cobra.Command{
		Use:   "report <timesheet.csv|timesheet.xlsx>",
		Short: "Print weekday and holiday overtime totals of a timesheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			format, err := timesheet.FormatFromFilename(path)
			if err != nil {
				return err
			}

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open timesheet: %w", err)
			}
			defer f.Close()

			records, err := timesheet.Read(f, format)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), overtimeService.NewCalculator(), records, showDays)
		},
	}
	cmd.Flags().BoolVar(&showDays, "days", false, "Also print each counted day")
	return cmd
}

func writeReport(w io.Writer, calc *overtimeService.Calculator, records []overtime.DailyRecord, showDays bool) error {
	yearMonth, err := calc.YearMonth(records)
	if err != nil {
		return err
	}
	result := calc.ComputeOvertime(records)

	if yearMonth != "" {
		fmt.Fprintln(w, yearMonth)
	}
	fmt.Fprintf(w, "合計残業時間: %s\n", overtime.FormatDuration(result.Total))
	fmt.Fprintf(w, "平日残業時間: %s\n", overtime.FormatDuration(result.Weekday))
	fmt.Fprintf(w, "休日残業時間: %s\n", overtime.FormatDuration(result.Holiday))

	if !showDays {
		return nil
	}
	fmt.Fprintln(w)
	for _, record := range records {
		day, ok := calc.EvaluateDay(record)
		if !ok {
			continue
		}
		label := "平日"
		if day.Category == overtime.CategoryHoliday {
			label = day.HolidayKind.Token()
		}
		fmt.Fprintf(w, "%s\t%s\t%s-%s\t%s\n", day.Date, label, record.ClockIn, record.ClockOut, overtime.FormatDuration(day.Overtime))
	}
	return nil
}

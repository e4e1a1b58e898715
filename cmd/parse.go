package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/parser/dateexpr"
	"github.com/m04kA/SMC-SchedulingAssistant/internal/parser/timeexpr"
)

func newParseCmd() *cobra.Command {
	var timezone string

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Resolve date and time expressions the way the assistant does",
	}
	cmd.PersistentFlags().StringVar(&timezone, "timezone", "UTC", "IANA timezone used to resolve relative dates")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "date <expression>",
			Short: "Resolve a date expression",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				loc, err := time.LoadLocation(timezone)
				if err != nil {
					return fmt.Errorf("invalid timezone %q: %w", timezone, err)
				}

				date, err := dateexpr.NewParser(loc, dateexpr.RealClock{}).Parse(strings.Join(args, " "))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatDate(date))
				return nil
			},
		},
		&cobra.Command{
			Use:   "time <expression>",
			Short: "Resolve a time-of-day expression",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				t, err := timeexpr.Parse(strings.Join(args, " "))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", t.Clock(), t.String())
				return nil
			},
		},
	)
	return cmd
}

func formatDate(d domain.CanonicalDate) string {
	return fmt.Sprintf("%s (%s, token %q)", d.ISO(), d.Human(), d.Token)
}

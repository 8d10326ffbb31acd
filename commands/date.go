package commands

import (
	"fmt"
	"time"

	"github.com/josephlewis42/minishell/core/engine"
)

var (
	dateDays = [...]string{
		"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
	}
	dateMonths = [...]string{
		"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre",
	}
)

// formatDate renders t like "dimanche 5 janvier 2025, 9:07:03 (UTC+0100)".
func formatDate(t time.Time) string {
	_, offset := t.Zone()
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}

	return fmt.Sprintf("%s %d %s %d, %d:%02d:%02d (UTC%c%02d%02d)",
		dateDays[t.Weekday()],
		t.Day(),
		dateMonths[t.Month()-1],
		t.Year(),
		t.Hour(), t.Minute(), t.Second(),
		sign, offset/3600, offset%3600/60)
}

// Date prints the current date and time.
func Date(env engine.Env, args []string) int {
	cmd := &SimpleCommand{
		Use:   "date [-u]",
		Short: "Print the system date and time.",
	}
	utc := cmd.Flags().BoolLong("utc", 'u', "print Coordinated Universal Time (UTC)")

	return cmd.Run(env, args, func() int {
		if operands := cmd.Flags().Args(); len(operands) > 0 {
			errorf(env, "date", "extra operand %q", operands[0])
			return 1
		}

		now := env.Now()
		if *utc {
			now = now.UTC()
		}

		fmt.Fprintln(env.Stdout(), formatDate(now))
		return 0
	})
}

func init() {
	addBuiltin("date", "Print the system date and time.", Date)
}

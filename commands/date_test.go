package commands

import (
	"testing"
	"time"

	"github.com/josephlewis42/minishell/core/engine"
	"github.com/josephlewis42/minishell/core/vos/vostest"
	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	cases := map[string]struct {
		at   time.Time
		want string
	}{
		"ahead of utc": {
			time.Date(2025, 1, 5, 9, 7, 3, 0, time.FixedZone("CET", 3600)),
			"dimanche 5 janvier 2025, 9:07:03 (UTC+0100)",
		},
		"behind utc": {
			time.Date(2024, 8, 15, 23, 59, 0, 0, time.FixedZone("NST", -(3*3600+30*60))),
			"jeudi 15 août 2024, 23:59:00 (UTC-0330)",
		},
		"utc": {
			time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC),
			"dimanche 31 décembre 2000, 0:00:00 (UTC+0000)",
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			assert.Equal(t, tc.want, formatDate(tc.at))
		})
	}
}

func TestDate(t *testing.T) {
	cases := goldenTestSuite{
		"default": {[]string{"date"}},
		"utc":     {[]string{"date", "-u"}},
	}

	cases.Run(t, Date)
}

func TestDate_errors(t *testing.T) {
	status, _, stderr := run(t, vostest.Command(engine.BuiltinFunc(Date), "date", "-x"))
	assert.Equal(t, 1, status)
	assert.Contains(t, stderr, "unknown option: -x")

	status, _, stderr = run(t, vostest.Command(engine.BuiltinFunc(Date), "date", "tomorrow"))
	assert.Equal(t, 1, status)
	assert.Equal(t, "date: extra operand \"tomorrow\"\n", stderr)
}

package commands

import (
	"testing"
)

func TestHelp(t *testing.T) {
	cases := goldenTestSuite{
		"list":   {[]string{"help", "--color=never"}},
		"topics": {[]string{"help", "echo", "nope", "kill"}},
	}

	cases.Run(t, Help)
}

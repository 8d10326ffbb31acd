package commands

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/josephlewis42/minishell/core/engine"
)

var (
	unescapeOctal   = regexp.MustCompile(`\\0[0-7][0-7]?[0-7]?`)
	unescapeHex     = regexp.MustCompile(`\\x[0-9a-fA-F][0-9a-fA-F]?`)
	unescapeReplace = strings.NewReplacer(
		`\n`, "\n", // newline
		`\r`, "\r", // carriage return
		`\t`, "\t", // horizontal tab
		`\\`, `\`, // backslash literal
		`\b`, "\b", // backspace
		`\a`, "\a", // alert
		`\f`, "\f", // form feed
		`\v`, "\v", // vertical tab
	)
)

func unescape(s string) string {
	s = unescapeReplace.Replace(s)
	s = unescapeOctal.ReplaceAllStringFunc(s, func(arg string) string {
		out, err := strconv.ParseInt(arg[2:], 8, 16)
		if err != nil || out > 0xff {
			return arg
		}
		return string(rune(out))
	})
	s = unescapeHex.ReplaceAllStringFunc(s, func(arg string) string {
		out, err := strconv.ParseInt(arg[2:], 16, 16)
		if err != nil {
			return arg
		}
		return string(rune(out))
	})
	return s
}

// isEchoFlag reports whether word is a cluster of echo's own flags. Anything
// else, including unknown flags, is text to print.
func isEchoFlag(word string) bool {
	return len(word) > 1 && word[0] == '-' && strings.Trim(word[1:], "ne") == ""
}

// Echo prints its arguments separated by single spaces.
//
//	-n  don't print the trailing newline
//	-e  interpret backslash escapes
func Echo(env engine.Env, args []string) int {
	newline, escaped := true, false

	words := args[1:]
	for len(words) > 0 && isEchoFlag(words[0]) {
		for _, flag := range words[0][1:] {
			switch flag {
			case 'n':
				newline = false
			case 'e':
				escaped = true
			}
		}
		words = words[1:]
	}

	out := strings.Join(words, " ")
	if escaped {
		out = unescape(out)
	}
	if newline {
		out += "\n"
	}

	fmt.Fprint(env.Stdout(), out)
	return 0
}

func init() {
	addBuiltin("echo", "Display a line of text.", Echo)
}

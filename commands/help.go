package commands

import (
	"fmt"

	"github.com/josephlewis42/minishell/core/engine"
)

// Help lists the built-ins, or describes the named ones.
func Help(env engine.Env, args []string) int {
	cmd := &SimpleCommand{
		Use:   "help [--color=WHEN] [NAME...]",
		Short: "Display information about built-in commands.",
	}
	var printer ColorPrinter
	printer.Init(cmd.Flags(), env.Stdout())

	return cmd.Run(env, args, func() int {
		builtins := env.Builtins()
		w := env.Stdout()

		if topics := cmd.Flags().Args(); len(topics) > 0 {
			status := 0
			for _, name := range topics {
				b, ok := builtins.Lookup(name)
				if !ok {
					errorf(env, "help", "no help topics match `%s'", name)
					status = 1
					continue
				}
				fmt.Fprintf(w, "%s: %s\n", name, Describe(b))
			}
			return status
		}

		fmt.Fprintln(w, "These shell commands are defined internally, anything else is run from PATH.")
		fmt.Fprintln(w, "Type `NAME --help' to see the options of the command `NAME'.")
		fmt.Fprintln(w)
		for _, name := range builtins.Names() {
			b, _ := builtins.Lookup(name)
			fmt.Fprintf(w, " %s  %s\n", printer.Sprintf(ColorBoldBlue, "%-10s", name), Describe(b))
		}
		return 0
	})
}

func init() {
	addBuiltin("help", "Display information about built-in commands.", Help)
}

package commands

import (
	"fmt"

	"github.com/josephlewis42/minishell/core/engine"
)

// Majora counts the days and hours since the tenth of January.
func Majora(env engine.Env, args []string) int {
	cmd := &SimpleCommand{
		Use:   "majora [--color=WHEN]",
		Short: "Print how long is left before the moon falls.",
	}
	var printer ColorPrinter
	printer.Init(cmd.Flags(), env.Stdout())

	return cmd.Run(env, args, func() int {
		now := env.Now()
		day := now.YearDay() - 1

		fmt.Fprint(env.Stdout(), printer.Sprintf(ColorBoldRed,
			"\n\tDAWN OF THE DAY %d\n\t %d hours elapsed\n",
			day-9, 24*(day-10)+now.Hour()))
		fmt.Fprintln(env.Stdout())
		return 0
	})
}

func init() {
	addBuiltin("majora", "Print how long is left before the moon falls.", Majora)
}

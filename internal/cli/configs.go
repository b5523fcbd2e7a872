package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// configsCommand creates the configs command for listing feasible stripe
// configurations.
func (c *CLI) configsCommand() *cobra.Command {
	var flags wallFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "configs",
		Short: "List stripe configurations that fit a wall",
		Long: `Configs lists every stripe configuration that fits the wall: patterns
always start and end with a colored stripe, so for n white stripes there
are n+1 colored ones. A configuration is listed when both computed stripe
widths fall inside the thickness constraint.`,
		Example: `  stripeplan configs --length 480 --height 260 --min 20 --max 45
  stripeplan configs -l 480 -H 260 --min 20 --max 45 --ratio 1.5 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := flags.form(c)
			if err != nil {
				return err
			}

			runner := c.newRunner(true)
			configs := runner.Enumerate(form.Options())

			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(configs)
			}

			if len(configs) == 0 {
				printInfo("No configuration fits this wall")
				printDetail("Try widening the thickness constraint or changing the ratio")
				return nil
			}

			printInfo("%d configurations fit", len(configs))
			for _, cfg := range configs {
				fmt.Println("  " +
					StyleHighlight.Render(fmt.Sprintf("%-6s", cfg.Value())) +
					StyleValue.Render(cfg.Label()))
			}
			return nil
		},
	}

	flags.register(cmd, false)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print configurations as JSON")
	return cmd
}

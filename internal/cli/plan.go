package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmendler/stripeplan/pkg/errors"
)

// planCommand creates the plan command: validate the chosen configuration
// and print the final layout.
func (c *CLI) planCommand() *cobra.Command {
	var flags wallFlags
	var noCache, refresh bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Validate a configuration and print the final layout",
		Long: `Plan validates the chosen stripe configuration against the current wall
and thickness constraint, recomputing the stripe widths from scratch, and
prints the resulting layout summary.`,
		Example: `  stripeplan plan -l 480 -H 260 --min 20 --max 45 --select 9,8
  stripeplan plan -l 480 -H 260 --min 20 --max 45 -s 9,8 --ratio 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := flags.form(c)
			if err != nil {
				return err
			}
			opts := form.Options()
			opts.Refresh = refresh

			runner := c.newRunner(noCache)
			defer runner.Close()

			layout, cached, err := runner.ComputeLayoutWithCacheInfo(cmd.Context(), opts)
			if err != nil {
				return planFailure(err)
			}

			printSuccess("%s", layout.Summary)
			printKeyValue("stripes", fmt.Sprintf("%d colored + %d white (%s)", layout.Colored, layout.White, layout.Direction))
			printKeyValue("colored", fmt.Sprintf("%.1f cm (%.1f%%)", layout.ColoredCm, layout.ColoredPct))
			printKeyValue("white", fmt.Sprintf("%.1f cm (%.1f%%)", layout.WhiteCm, layout.WhitePct))
			printPlanStats(len(runner.Enumerate(opts)), cached)
			return nil
		},
	}

	flags.register(cmd, false)
	flags.registerSelection(cmd)
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the plan cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute and overwrite the cached plan")
	return cmd
}

// planFailure turns a layout validation error into the message the user
// acts on. Thickness failures include both recomputed widths.
func planFailure(err error) error {
	if te, ok := errors.AsThickness(err); ok {
		printError("Stripe widths out of range")
		printDetail("colored %.1f cm, white %.1f cm (allowed %.1f-%.1f cm)", te.ColoredCm, te.WhiteCm, te.MinCm, te.MaxCm)
		printDetail("Pick a different configuration or widen the constraint")
		return fmt.Errorf("%s", errors.GetCode(err))
	}
	return err
}

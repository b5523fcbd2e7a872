package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmendler/stripeplan/pkg/plan"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file path (or base path for multiple formats)
	formats []string // output formats: "svg", "pdf", "png", "json"
	style   string   // visual style
	caption bool     // draw the summary caption under the wall
	noCache bool     // bypass the cache entirely
	refresh bool     // recompute and overwrite cached entries
}

// renderCommand creates the render command for generating wall previews.
func (c *CLI) renderCommand() *cobra.Command {
	var flags wallFlags
	var formatsStr string
	opts := renderOpts{style: plan.DefaultStyle}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the wall preview to SVG, PDF, PNG, or JSON",
		Example: `  stripeplan render -l 480 -H 260 --min 20 --max 45 -s 9,8 -o wall.svg
  stripeplan render -l 480 -H 260 --min 20 --max 45 -s 9,8 -f svg,png --wardrobe 120x200+48`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := plan.ValidateFormats(opts.formats); err != nil {
				return err
			}

			form, err := flags.form(c)
			if err != nil {
				return err
			}
			planOpts := form.Options()
			planOpts.Formats = opts.formats
			planOpts.Style = opts.style
			planOpts.Caption = opts.caption
			planOpts.Refresh = opts.refresh

			return c.runRender(cmd, planOpts, &opts)
		},
	}

	flags.register(cmd, true)
	flags.registerSelection(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVar(&opts.style, "style", opts.style, "visual style: flat")
	cmd.Flags().BoolVar(&opts.caption, "caption", false, "draw the layout summary under the wall")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute and overwrite cached entries")
	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, planOpts plan.Options, opts *renderOpts) error {
	runner := c.newRunner(opts.noCache)
	defer runner.Close()

	spinner := newSpinner(cmd.Context(), "Rendering wall preview")
	spinner.Start()

	result, err := runner.Execute(cmd.Context(), planOpts)
	if err != nil {
		spinner.Stop()
		if spinner.Cancelled() {
			return cmd.Context().Err()
		}
		return planFailure(err)
	}
	spinner.StopWithSuccess(result.Layout.Summary)
	printWarnings(result.Scene.Warnings)

	for _, format := range opts.formats {
		path := outputPath(opts.output, format, len(opts.formats) > 1)
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	printPlanStats(result.Stats.ConfigCount, result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit)
	return nil
}

// outputPath derives the output file for a format. With multiple formats
// the --output value is treated as a base path and the extension is
// replaced per format.
func outputPath(output, format string, multi bool) string {
	if output == "" {
		return "wall." + format
	}
	if !multi {
		return output
	}
	base := strings.TrimSuffix(output, filepath.Ext(output))
	return base + "." + format
}

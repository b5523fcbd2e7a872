package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jmendler/stripeplan/pkg/plan"
	"github.com/jmendler/stripeplan/pkg/stripe"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// Preview dimensions in terminal cells.
const (
	previewWidth  = 44
	previewHeight = 12
)

// =============================================================================
// ConfigPickerModel - Interactive configuration selection
// =============================================================================

// ConfigPickerModel is the bubbletea model for picking a stripe
// configuration with a live wall preview.
type ConfigPickerModel struct {
	Opts     plan.Options
	Configs  []stripe.Config
	Cursor   int
	Selected *stripe.Config
}

// NewConfigPickerModel creates a picker over the feasible configurations.
func NewConfigPickerModel(opts plan.Options, configs []stripe.Config) ConfigPickerModel {
	return ConfigPickerModel{Opts: opts, Configs: configs}
}

func (m ConfigPickerModel) Init() tea.Cmd {
	return nil
}

func (m ConfigPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Configs)-1 {
				m.Cursor++
			}
		case "enter":
			cfg := m.Configs[m.Cursor]
			m.Selected = &cfg
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ConfigPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Stripe Configuration"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	var list strings.Builder
	for i, cfg := range m.Configs {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-6s %s", cursor, cfg.Value(), cfg.Label())
		if i == m.Cursor {
			list.WriteString(listSelectedStyle.Render(line))
		} else {
			list.WriteString(listNormalStyle.Render(line))
		}
		list.WriteString("\n")
	}

	preview := m.renderPreview(m.Configs[m.Cursor])
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list.String(), "   ", preview))

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Configs))))
	return b.String()
}

// renderPreview draws the wall as a block of background-colored cells,
// stripes proportional to their computed widths.
func (m ConfigPickerModel) renderPreview(cfg stripe.Config) string {
	coloredStyle := lipgloss.NewStyle().Background(lipgloss.Color(m.Opts.ColoredColor))
	whiteStyle := lipgloss.NewStyle().Background(lipgloss.Color(m.Opts.WhiteColor))

	horizontal := m.Opts.Wall.Direction == stripe.DirectionHorizontal
	span := previewWidth
	if horizontal {
		span = previewHeight
	}
	cells := stripeCells(cfg, span)

	var b strings.Builder
	if horizontal {
		for _, c := range cells {
			style := whiteStyle
			if c {
				style = coloredStyle
			}
			b.WriteString(style.Render(strings.Repeat(" ", previewWidth)))
			b.WriteString("\n")
		}
	} else {
		var row strings.Builder
		for _, c := range cells {
			style := whiteStyle
			if c {
				style = coloredStyle
			}
			row.WriteString(style.Render(" "))
		}
		for i := 0; i < previewHeight; i++ {
			b.WriteString(row.String())
			b.WriteString("\n")
		}
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(colorDim).
		Render(strings.TrimRight(b.String(), "\n"))
}

// stripeCells maps the alternating stripe sequence onto span terminal
// cells, colored-first, each stripe at least one cell wide.
func stripeCells(cfg stripe.Config, span int) []bool {
	total := cfg.Total()
	unit := cfg.ColoredCm*float64(cfg.Colored) + cfg.WhiteCm*float64(cfg.White)
	if unit <= 0 || total == 0 {
		return make([]bool, span)
	}

	cells := make([]bool, 0, span)
	consumed := 0
	for i := 0; i < total; i++ {
		colored := i%2 == 0
		widthCm := cfg.WhiteCm
		if colored {
			widthCm = cfg.ColoredCm
		}
		n := int(widthCm / unit * float64(span))
		if n < 1 {
			n = 1
		}
		if i == total-1 {
			n = span - consumed
			if n < 1 {
				n = 1
			}
		}
		for j := 0; j < n && consumed < span; j++ {
			cells = append(cells, colored)
			consumed++
		}
	}
	for consumed < span {
		cells = append(cells, true)
		consumed++
	}
	return cells
}

// =============================================================================
// Command
// =============================================================================

// tuiCommand creates the interactive configuration picker command.
func (c *CLI) tuiCommand() *cobra.Command {
	var flags wallFlags

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Pick a stripe configuration interactively",
		Example: `  stripeplan tui -l 480 -H 260 --min 20 --max 45
  stripeplan tui -l 480 -H 260 --min 20 --max 45 --ratio 1.5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := flags.form(c)
			if err != nil {
				return err
			}
			opts := form.Options()
			opts.SetRenderDefaults()

			runner := c.newRunner(true)
			configs := runner.Enumerate(opts)
			if len(configs) == 0 {
				printInfo("No configuration fits this wall")
				printDetail("Try widening the thickness constraint or changing the ratio")
				return nil
			}

			model := NewConfigPickerModel(opts, configs)
			final, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}

			picked, ok := final.(ConfigPickerModel)
			if !ok || picked.Selected == nil {
				return nil
			}

			opts.Selection = stripe.Selection{Colored: picked.Selected.Colored, White: picked.Selected.White}
			layout, err := runner.ComputeLayout(cmd.Context(), opts)
			if err != nil {
				return planFailure(err)
			}

			printSuccess("%s", layout.Summary)
			printDetail("Render it: stripeplan render -l %s -H %s --min %s --max %s -s %s -o wall.svg",
				flags.length, flags.height, form.Min, form.Max, opts.Selection.Value())
			return nil
		},
	}

	flags.register(cmd, true)
	return cmd
}

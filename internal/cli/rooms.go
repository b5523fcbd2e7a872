package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmendler/stripeplan/pkg/room"
	"github.com/jmendler/stripeplan/pkg/stripe"
)

// roomsCommand creates the rooms command group for managing saved rooms.
func (c *CLI) roomsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "Manage saved rooms",
		Long: `Rooms stores named wall planning documents: the wall dimensions, the
thickness constraint, the chosen configuration, colors, and furniture
overlays. The storage backend is selected in the config file (file by
default, redis or mongo for shared setups).`,
	}

	cmd.AddCommand(c.roomsListCommand())
	cmd.AddCommand(c.roomsShowCommand())
	cmd.AddCommand(c.roomsSaveCommand())
	cmd.AddCommand(c.roomsDeleteCommand())
	cmd.AddCommand(c.roomsImportCommand())
	return cmd
}

func (c *CLI) roomsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved rooms",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.newStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			rooms, err := st.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(rooms) == 0 {
				printInfo("No saved rooms")
				return nil
			}
			for _, r := range rooms {
				fmt.Println("  " +
					StyleValue.Render(fmt.Sprintf("%-24s", r.Name)) +
					StyleDim.Render(fmt.Sprintf("%.0fx%.0f cm  %s  %s", r.Wall.LengthCm, r.Wall.HeightCm, selectionOrDash(r.Selection), r.ID)))
			}
			return nil
		},
	}
}

func (c *CLI) roomsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.newStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			r, err := st.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printKeyValue("name", r.Name)
			printKeyValue("id", r.ID)
			printKeyValue("wall", fmt.Sprintf("%.0f x %.0f cm", r.Wall.LengthCm, r.Wall.HeightCm))
			printKeyValue("constraint", fmt.Sprintf("%.1f - %.1f cm", r.Constraint.MinCm, r.Constraint.MaxCm))
			printKeyValue("ratio", fmt.Sprintf("%g", r.Ratio))
			printKeyValue("selection", selectionOrDash(r.Selection))
			printKeyValue("colors", r.Colors.Colored+" / "+r.Colors.White)
			if r.Wardrobe.Shown {
				printKeyValue("wardrobe", obstacleLine(r.Wardrobe))
			}
			if r.Window.Shown {
				printKeyValue("window", obstacleLine(r.Window))
			}
			printKeyValue("updated", r.UpdatedAt.Format("2006-01-02 15:04"))
			return nil
		},
	}
}

func (c *CLI) roomsSaveCommand() *cobra.Command {
	var flags wallFlags
	var name, id string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a room from the given wall flags",
		Example: `  stripeplan rooms save --name "kids room" -l 480 -H 260 --min 20 --max 45 -s 9,8
  stripeplan rooms save --id <id> --name "kids room" -l 500 -H 260 --min 20 --max 45`,
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := flags.form(c)
			if err != nil {
				return err
			}
			opts := form.Options()

			r := room.New(name)
			if id != "" {
				r.ID = id
			}
			r.Wall = opts.Wall
			r.Constraint = stripe.Constraint{MinCm: opts.MinCm, MaxCm: opts.MaxCm}
			r.Ratio = opts.Ratio
			r.Selection = opts.Selection
			r.Colors = room.Colors{Colored: opts.ColoredColor, White: opts.WhiteColor}
			r.Wardrobe = opts.Wardrobe
			r.Window = opts.Window

			st, err := c.newStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Put(cmd.Context(), r); err != nil {
				return err
			}
			printSuccess("Saved %q", r.Name)
			printDetail("id: %s", r.ID)
			return nil
		},
	}

	flags.register(cmd, true)
	flags.registerSelection(cmd)
	cmd.Flags().StringVarP(&name, "name", "n", "", "room name (required)")
	cmd.Flags().StringVar(&id, "id", "", "existing room ID to overwrite")
	cmd.MarkFlagRequired("name")
	return cmd
}

func (c *CLI) roomsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.newStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess("Deleted %s", args[0])
			return nil
		},
	}
}

func (c *CLI) roomsImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.toml>",
		Short: "Import a room from a TOML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := room.ImportTOML(args[0])
			if err != nil {
				return err
			}

			st, err := c.newStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Put(cmd.Context(), r); err != nil {
				return err
			}
			printSuccess("Imported %q", r.Name)
			printDetail("id: %s", r.ID)
			return nil
		},
	}
}

func selectionOrDash(s stripe.Selection) string {
	if s.IsZero() {
		return "—"
	}
	return s.Value()
}

func obstacleLine(o stripe.Obstacle) string {
	line := fmt.Sprintf("%.0f x %.0f cm, %.0f cm from right", o.WidthCm, o.HeightCm, o.RightCm)
	if o.Kind == stripe.ObstacleWindow {
		line += fmt.Sprintf(", %.0f cm above floor", o.FloorCm)
	}
	return line
}

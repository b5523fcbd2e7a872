package cli

import (
	"github.com/spf13/cobra"
)

// serveCommand creates the serve command for the local preview server.
func (c *CLI) serveCommand() *cobra.Command {
	var listen string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local HTTP preview server",
		Long: `Serve runs a local HTTP server exposing the planning pipeline:
configuration enumeration, plan computation, rendered wall previews, and
CRUD for saved rooms. The server shuts down gracefully on interrupt.`,
		Example: `  stripeplan serve
  stripeplan serve --listen :9000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listen == "" {
				listen = c.Config().Server.Listen
			}

			srv, err := c.newServer(cmd, noCache)
			if err != nil {
				return err
			}
			return srv.ListenAndServe(cmd.Context(), listen)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default from config, localhost:8412)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the cache")
	return cmd
}

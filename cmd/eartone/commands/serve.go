package commands

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/haivivi/eartone/pkg/server"
)

var (
	serveFlags   synthFlags
	serveAddr    string
	serveOrigins []string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the preview HTTP server",
	Long: `Serve freshly rendered recordings over HTTP.

Routes:
  GET /healthz
  GET /v1/catalog
  GET /v1/notes/{pitch}.wav
  GET /v1/intervals/{base}/{interval}/{harmonic|ascending|descending}.wav
  GET /metrics

Examples:
  eartone serve
  eartone serve --addr 127.0.0.1:9000 --seed 1`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}
		c, err := serveFlags.composer(cfg)
		if err != nil {
			return err
		}
		addr := serveAddr
		if addr == "" {
			addr = cfg.Serve.Addr
		}
		srv, err := server.New(server.Config{
			Addr:           addr,
			Composer:       c,
			AllowedOrigins: serveOrigins,
			Logger:         slog.Default(),
		})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.ListenAndServe(ctx)
	},
}

func init() {
	serveFlags.register(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default serve.addr from config, :8080)")
	serveCmd.Flags().StringSliceVar(&serveOrigins, "cors-origin", nil, "allowed CORS origins (default *)")
	rootCmd.AddCommand(serveCmd)
}

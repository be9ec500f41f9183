package commands

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ruinlab/ruin/web"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the interactive web console",
	Long: `Serves a single-page console where walk parameters can be submitted and
simulations watched live: progress streams over a websocket, and results
arrive as a stats table plus an SVG histogram with the analytic marker.`,
	Run: func(cmd *cobra.Command, args []string) {
		host := serveHost
		if host == "" {
			host = os.Getenv("RUIN_SERVE_HOST")
		}
		port := servePort
		if port == 0 {
			if v := os.Getenv("RUIN_SERVE_PORT"); v != "" {
				p, err := strconv.Atoi(v)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Invalid RUIN_SERVE_PORT %q: %v\n", v, err)
					os.Exit(1)
				}
				port = p
			}
		}
		if port == 0 {
			port = 8080
		}

		srv := web.NewServer(fmt.Sprintf("%s:%d", host, port), resolveSeed())
		if err := srv.ListenAndServe(); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Server host (default: RUIN_SERVE_HOST env var or all interfaces)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Server port (default: RUIN_SERVE_PORT env var or 8080)")
	rootCmd.AddCommand(serveCmd)
}

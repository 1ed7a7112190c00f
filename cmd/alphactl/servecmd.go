package main

import (
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"alphactl/core"
	"alphactl/docs"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "run the docs server, rendering registered models and formulas on demand",
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := docs.NewServer(serveAddr)
		srv.Log = srv.Log.WithField("session_id", uuid.NewString())

		if metricsAddr := os.Getenv("ALPHACTL_METRICS_ADDR"); metricsAddr != "" {
			go func() {
				mux := http.NewServeMux()
				mux.Handle("/metrics", promhttp.HandlerFor(core.Registry(), promhttp.HandlerOpts{}))
				srv.Log.WithField("addr", metricsAddr).Info("metrics server starting")
				if err := http.ListenAndServe(metricsAddr, mux); err != nil {
					srv.Log.WithError(err).Error("metrics server exited")
				}
			}()
		}

		return srv.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "address to listen on")
	rootCmd.AddCommand(serveCmd)
}

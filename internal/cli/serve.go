package cli

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/obatools/rosterscout/internal/api"
	"github.com/obatools/rosterscout/internal/logger"
)

var flagAddr string

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the roster API over HTTP",
		RunE:  runServe,
	}

	cmd.Flags().StringVar(&flagAddr, "addr", "127.0.0.1:8823", "Listen address")

	return cmd
}

func runServe(_ *cobra.Command, _ []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              flagAddr,
		Handler:           api.NewServer(a.svc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("api listening", logger.Fields{"addr": flagAddr})
	return server.ListenAndServe()
}

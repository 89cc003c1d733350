package main

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/adscope/adkit/staticserve"
)

func newServeCommand() *cobra.Command {
	var (
		host      string
		port      int
		dir       string
		noBrowser bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a directory over HTTP with CORS headers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := staticserve.New(host, port, dir)
			srv.OpenBrowser = !noBrowser

			err := srv.Start(ctx)
			if errors.Is(err, staticserve.ErrPortInUse) {
				return fmt.Errorf("port %d is already in use; pick another with --port or stop the existing server", srv.Port)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&host, "host", "0.0.0.0", "Address to bind to")
	cmd.Flags().IntVarP(&port, "port", "p", 8000, "Port to listen on")
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Directory to serve")
	cmd.Flags().BoolVar(&noBrowser, "no-browser", false, "Do not open the local URL in a browser")

	return cmd
}

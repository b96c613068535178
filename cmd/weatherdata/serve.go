package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jgivc/weatherdata/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP service",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	a := app.New(cfgFileName)
	if err := a.Init(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := a.Start()

	select {
	case err, ok := <-errc:
		if ok && err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		fmt.Fprintln(cmd.ErrOrStderr(), "Received termination signal. Shutting down...")
	}

	return a.Stop()
}

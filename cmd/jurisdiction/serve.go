package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mycoria/jurisdiction/api"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var (
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the lookup API",
		Args:  cobra.NoArgs,
		RunE:  serve,
	}

	sigUSR1 = syscall.Signal(0xa)
)

func serve(cmd *cobra.Command, args []string) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}

	// Configure logging.
	setupLogging(c.LogLevel)

	// Setup up everything.
	lookupAPI := api.New(c, slog.Default())
	ln, err := net.Listen("tcp", c.APIListen.String())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", c.APIListen, err)
	}
	served := make(chan error, 1)
	go func() {
		served <- lookupAPI.Serve(ln)
	}()

	// Wait for signal.
	signalCh := make(chan os.Signal, 1)
	signal.Notify(
		signalCh,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
		sigUSR1,
	)

	for {
		select {
		case sig := <-signalCh:
			// Only print and continue to wait if SIGUSR1
			if sig == sigUSR1 {
				printStackTo(os.Stderr, "PRINTING STACK ON REQUEST")
				continue
			}

			fmt.Println(" <INTERRUPT>") // CLI output.
			slog.Warn("program was interrupted, stopping")

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := lookupAPI.Shutdown(ctx); err != nil {
				return fmt.Errorf("failed to stop api: %w", err)
			}
			return <-served

		case err := <-served:
			if err != nil {
				return fmt.Errorf("api failed: %w", err)
			}
			return nil
		}
	}
}

func printStackTo(writer io.Writer, msg string) {
	_, err := fmt.Fprintf(writer, "===== %s =====\n", msg)
	if err == nil {
		err = pprof.Lookup("goroutine").WriteTo(writer, 1)
	}
	if err != nil {
		slog.Error("failed to write stack trace", "err", err)
	}
}

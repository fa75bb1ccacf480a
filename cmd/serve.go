package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rpupo63/omie-site-backend/api"
	"github.com/rpupo63/omie-site-backend/content"
	"github.com/rpupo63/omie-site-backend/transform"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

var serverPort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the content API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serverPort, "port", "", "port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if serverPort != "" {
		settings.Port = serverPort
	}

	client, err := newStrapiClient(ctx)
	if err != nil {
		return fmt.Errorf("configure Strapi client: %w", err)
	}

	var gateway content.Gateway
	if !settings.UseMock {
		gateway = client
	}
	degraded := content.NewDegradedCounter()
	source, err := content.NewSource(settings, gateway, transform.NewFromSettings(settings), degraded)
	if err != nil {
		return fmt.Errorf("initialize content source: %w", err)
	}

	server, err := api.NewServer(settings, api.Dependencies{
		Source:   source,
		Prober:   client,
		Degraded: degraded,
	})
	if err != nil {
		return fmt.Errorf("initialize server: %w", err)
	}

	errChannel := make(chan error, 2)
	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(shutdownTimeout)
	return nil
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}

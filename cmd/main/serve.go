package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitness-spc/src/interfaces"
	"fitness-spc/src/server"

	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and websocket push server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("port") {
			appConfig.Port = servePort
			if err := appConfig.Validate(); err != nil {
				return err
			}
		}

		analyzer, db, err := openAnalyzer()
		if err != nil {
			return err
		}
		defer db.Close()

		api := server.NewAPIServer(appConfig.MConfig, analyzer, appLogger)

		// 1. Seed the snapshot sent to new websocket clients
		reports, err := analyzer.ReportsFor(context.Background(), analyzer.MetricNames())
		if err != nil {
			appLogger.Warning("Initial reports failed: %v", err)
		} else {
			api.SetLatestState(reports, time.Now().UTC().Unix())
		}

		var srv interfaces.IDataExchanger = api

		// 2. Start Server
		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start()
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case <-quit:
			appLogger.Info("Shutting down...")
			return srv.Stop()
		}
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "override the configured port")
	rootCmd.AddCommand(serveCmd)
}

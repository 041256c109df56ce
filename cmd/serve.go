package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-ethmgr/internal/adapter/api"
	"golang-ethmgr/internal/ethernet"
	"golang-ethmgr/internal/pkg/logging"
	"golang-ethmgr/internal/port"

	"github.com/sourcegraph/conc"
	"github.com/spf13/cobra"
)

var (
	configFlag string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Watch both ethernet ports and serve their state over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(configFlag)
		if err != nil {
			fmt.Println(err)
			return
		}

		logging.InitLogger(cfg.Logging)

		logger := logging.GetLogger()
		logger.WithField("config_file", configFlag).Info("Starting daemon")

		manager, source, err := createManager(cfg)
		if err != nil {
			logger.WithError(err).Error("Failed to create configuration manager")
			return
		}
		defer source.Close()
		defer manager.Close()

		listeners := make(map[ethernet.Interface]port.AvailabilityListener, len(ethernet.Interfaces))
		for _, iface := range ethernet.Interfaces {
			iface := iface
			listener := ethernet.ListenerFunc(func(available bool) {
				logAvailability(manager, iface, available)
			})
			if err := manager.AddListenerFor(iface, listener); err != nil {
				logger.WithField("port", iface.String()).WithError(err).Error("Failed to watch interface")
				continue
			}
			listeners[iface] = listener
		}
		defer func() {
			for iface, listener := range listeners {
				if err := manager.RemoveListenerFor(iface, listener); err != nil {
					logger.WithField("port", iface.String()).WithError(err).Warn("Failed to stop watching interface")
				}
			}
		}()

		var background conc.WaitGroup
		var server *api.Server
		if cfg.API.Listen != "" {
			server = api.NewServer(manager, cfg.API.Listen)
			background.Go(func() {
				if err := server.Start(); err != nil {
					logger.WithError(err).Error("API server failed")
				}
			})
		}

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.WithField("signal", sig.String()).Info("Received shutdown signal")

		if server != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Stop(ctx); err != nil {
				logger.WithError(err).Warn("API server did not stop cleanly")
			}
		}
		background.Wait()
		logger.Info("Daemon stopped")
	},
}

func logAvailability(manager *ethernet.Manager, iface ethernet.Interface, available bool) {
	log := logging.WithComponent("serve").WithField("port", iface.String()).WithField("available", available)
	state, err := manager.Info(iface)
	if err != nil {
		log.WithError(err).Warn("Availability changed, snapshot unavailable")
		return
	}
	logging.WithComponentAndInterface("serve", state.Name()).WithFields(map[string]interface{}{
		"port":      iface.String(),
		"available": available,
		"state":     state.DetailedState(),
	}).Info("Availability changed")
}

func init() {
	serveCmd.Flags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML)")
	if err := serveCmd.MarkFlagRequired("config"); err != nil {
		panic(err) // This should never happen during initialization
	}
	rootCmd.AddCommand(serveCmd)
}

package app

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mx-watch/notifier-alerts/cmd/notifier-alerts/app/check"
	cmd "github.com/mx-watch/notifier-alerts/cmd/notifier-alerts/services"
	"github.com/mx-watch/notifier-alerts/config"
	alertsLogger "github.com/mx-watch/notifier-alerts/internal/logger"
	"github.com/mx-watch/notifier-alerts/internal/version"
)

var RootCmd = &cobra.Command{
	Use:           "notifier-alerts",
	Short:         "Watch the events notifier queue and raise alerts on ownership changes",
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return run(viper.GetString("config"))
	},
}

func init() {
	var err error

	RootCmd.PersistentFlags().String("config", "", "directory to look for config.yaml")
	err = viper.BindPFlag("config", RootCmd.PersistentFlags().Lookup("config"))
	if err != nil {
		log.Fatal(err)
	}

	RootCmd.AddCommand(check.Cmd)
	RootCmd.AddCommand(DumpConfigCmd)
}

func Execute() error {
	return RootCmd.Execute()
}

func run(configDir string) error {
	alertsConfig, err := config.Load(configDir)
	if err != nil {
		return fmt.Errorf("failed to load app config: %w", err)
	}

	logger, err := alertsLogger.NewLogger(alertsConfig.LogLevel, alertsConfig.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to create logger: %v", err)
	}

	hostname, err := os.Hostname()
	if err != nil {
		return fmt.Errorf("failed to get host name: %v", err)
	}

	logger = logger.With(slog.String("host", hostname))

	logger.Info("Starting notifier-alerts", slog.String("version", version.Version), slog.String("commit", version.Commit))

	// setup signal catching before any dial so that an interrupt during startup is handled too
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(signalChan)

	go func() {
		if alertsConfig.ProfilerAddr != "" {
			logger.Info(fmt.Sprintf("Starting profiler on http://%s/debug/pprof", alertsConfig.ProfilerAddr))

			err := http.ListenAndServe(alertsConfig.ProfilerAddr, nil)
			if err != nil {
				logger.Error("failed to start profiler server", slog.String("err", err.Error()))
			}
		}
	}()

	go func() {
		if alertsConfig.Prometheus.IsEnabled() {
			logger.Info("Starting prometheus", slog.String("endpoint", alertsConfig.Prometheus.Endpoint))
			mux := http.NewServeMux()
			mux.Handle(alertsConfig.Prometheus.Endpoint, promhttp.Handler())
			err := http.ListenAndServe(alertsConfig.Prometheus.Addr, mux)
			if err != nil {
				logger.Error("failed to start prometheus server", slog.String("err", err.Error()))
			}
		}
	}()

	return serve(logger, alertsConfig, signalChan, cmd.StartWatcher, os.Exit)
}

type startFunc func(logger *slog.Logger, alertsConfig *config.AlertsConfig, shutdownCh chan string) (func(), error)

type startResult struct {
	shutdown func()
	err      error
}

// serve starts the watcher and blocks until it shuts down or a signal arrives. Any
// interrupt, during startup or while consuming, ends with a nil error.
func serve(logger *slog.Logger, alertsConfig *config.AlertsConfig, signalChan <-chan os.Signal, start startFunc, exit func(int)) error {
	shutdownCh := make(chan string, 1)
	startedCh := make(chan startResult, 1)

	go func() {
		shutdown, err := start(logger, alertsConfig, shutdownCh)
		startedCh <- startResult{shutdown: shutdown, err: err}
	}()

	var shutdown func()

	select {
	case res := <-startedCh:
		if res.err != nil {
			return fmt.Errorf("failed to start watcher: %v", res.err)
		}
		shutdown = res.shutdown
	case sig := <-signalChan:
		logger.Info("Interrupted", slog.String("signal", sig.String()))

		// release whatever the pending startup manages to build
		go func() {
			res := <-startedCh
			if res.err == nil && res.shutdown != nil {
				res.shutdown()
			}
		}()

		return nil
	}

	select {
	case reason := <-shutdownCh:
		logger.Info("Received shutdown signal", slog.String("reason", reason))
	case sig := <-signalChan:
		logger.Info("Interrupted", slog.String("signal", sig.String()))
	}

	cleanedUp := make(chan struct{})
	defer close(cleanedUp)

	// a second signal while cleaning up exits immediately
	go func() {
		select {
		case <-signalChan:
			logger.Warn("Interrupted again, exiting")
			exit(0)
		case <-cleanedUp:
		}
	}()

	appCleanup(logger, shutdown)

	return nil
}

func appCleanup(logger *slog.Logger, shutdownFns ...func()) {
	logger.Info("cleaning up")
	for _, fn := range shutdownFns {
		fn()
	}
}

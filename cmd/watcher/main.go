// Directory watcher service
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/xitonix/xgrid/config"
	"github.com/xitonix/xgrid/logging"
	"github.com/xitonix/xgrid/obfuscate"
	"github.com/xitonix/xgrid/taps"
)

type fileTap interface {
	obfuscate.Tap
	Errors() <-chan error
	Progress() <-chan *taps.Result
}

func main() {
	configPath := flag.String("config", "xgrid.yaml", "The path to the YAML configuration file")
	logLevel := flag.String("log-level", "", "Overrides the log level of the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	log, err := logging.NewConsole(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	tap, err := newTap(cfg, log)
	if err != nil {
		log.Fatalf("Failed to create the %s tap: %s", cfg.Watcher, err)
	}

	engine := obfuscate.NewEngine(cfg.Workers, log, tap)
	wg := &sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for err := range tap.Errors() {
			log.Error(err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for p := range tap.Progress() {
			log.Infof("%s > %s %s", p.Input.Name, p.Output.Name, p.Status)
		}
	}()

	engine.Start()
	log.Infof("The service is up and running (%s '%s' into '%s'). Press Ctrl+C to stop it", cfg.Mode, cfg.Source, cfg.Target)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	<-signals
	engine.Stop()
	wg.Wait()
	log.Info("The engine has been stopped successfully")
}

func newTap(cfg *config.Config, log logging.Logger) (fileTap, error) {
	opts := taps.Options{
		Mode:            cfg.Operation(),
		NotifyErrors:    true,
		ReportProgress:  true,
		DeleteCompleted: cfg.DeleteCompleted,
		SettleDelay:     cfg.SettleDelay,
		Logger:          log,
	}
	if cfg.Watcher == config.WatcherNotify {
		return taps.NewDirectoryWatcherTap(cfg.Source, cfg.Target, opts)
	}
	return taps.NewFilesystemTap(cfg.Source, cfg.Target, cfg.PollingInterval, opts)
}

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"archecal/internal/config"
	appLog "archecal/internal/log"
	"archecal/internal/schedule"
	"archecal/internal/web"
)

type flagConfig struct {
	configPath string
	listen     string
	dataDir    string
}

func main() {
	appLog.Info("archecal starting", "version", "0.1.0")

	flags := parseFlags()

	conf, err := config.Load(flags.configPath)
	if err != nil {
		appLog.Error("failed to load config", err, "config_path", flags.configPath)
		os.Exit(1)
	}

	// CLI flags override the config file when provided.
	if flags.listen != "" {
		conf.Listen = flags.listen
	}
	if flags.dataDir != "" {
		conf.DataDir = flags.dataDir
	}

	appLog.Info("effective config",
		"listen", conf.Listen,
		"data_dir", conf.DataDir,
		"slot_minutes", conf.SlotMinutes,
		"window_start", conf.WindowStart,
		"window_end", conf.WindowEnd,
		"show_text", conf.ShowText,
	)

	store := schedule.NewStore()

	// Pre-load schedules from the data directory. A missing or broken
	// file is logged and skipped; uploads can fill the gap later.
	schedule.LoadDataDir(conf.DataDir, store, web.LogObserver)

	srv := web.NewServer(conf, store)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		appLog.Info("signal received, shutting down", "signal", sig.String())
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			appLog.Error("server stopped", err)
			os.Exit(1)
		}
	case <-ctx.Done():
	}

	appLog.Info("archecal exiting")
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.configPath, "config", "config.yaml", "Path to config file")
	flag.StringVar(&cfg.listen, "listen", "", "HTTP listen address (overrides config if set)")
	flag.StringVar(&cfg.dataDir, "data-dir", "", "Directory scanned for schedule files (overrides config if set)")

	flag.Parse()

	return cfg
}

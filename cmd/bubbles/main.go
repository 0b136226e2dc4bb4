package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"BubbleClicker/internal/config"
	"BubbleClicker/internal/economy"
	"BubbleClicker/internal/notifier"
	"BubbleClicker/internal/recorder"
	"BubbleClicker/internal/scheduler"
	"BubbleClicker/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] Bubbles starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init save store; an unusable backend degrades to an in-memory session.
	kv := openStore(cfg)
	defer kv.Close()

	// Init recorder
	var rec recorder.Recorder
	if cfg.History.SQLitePath != "" {
		ensureDir(cfg.History.SQLitePath)
		sr, err := recorder.NewSQLiteRecorder(cfg.History.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init economy
	econ := economy.NewManager(store.NewGateway(kv), rec, cfg.Game.DevMode)
	snap := econ.Snapshot()
	log.Printf("[INFO] save loaded: gold=%.0f gps=%.0f stars=%d run=%s",
		snap.Currency, snap.IncomeRate, snap.PrestigeStars, econ.RunID())

	// Init scheduler
	sched := scheduler.NewScheduler(econ, rec, cfg.Schedule.IncomeSpec)
	if err := sched.RegisterAll(cfg.Schedule.SnapshotCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start front end
	done := make(chan struct{})
	go func() {
		defer close(done)
		if cfg.Telegram.BotToken != "" {
			tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
			tn.Run(ctx, sched.HandleCommand)
			return
		}
		notifier.NewConsole(os.Stdin, os.Stdout).Run(ctx, sched.HandleCommand)
	}()

	log.Println("[INFO] Bubbles is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal or the front end closing
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
		log.Println("[INFO] shutdown signal received, stopping...")
	case <-done:
		log.Println("[INFO] front end closed, stopping...")
	}
	cancel()
	log.Println("[INFO] Bubbles stopped")
}

func openStore(cfg *config.Config) store.KV {
	switch cfg.Storage.Driver {
	case config.DriverFile:
		kv, err := store.NewFileKV(cfg.Storage.FileDir)
		if err == nil {
			return kv
		}
		log.Printf("[WARN] init file store failed, progress will not be saved: %v", err)
	case config.DriverSQLite:
		ensureDir(cfg.Storage.SQLitePath)
		kv, err := store.NewSQLiteKV(cfg.Storage.SQLitePath)
		if err == nil {
			return kv
		}
		log.Printf("[WARN] init sqlite store failed, progress will not be saved: %v", err)
	}
	return store.NewMemoryKV()
}

func ensureDir(path string) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.Printf("[WARN] create %s: %v", filepath.Dir(path), err)
	}
}

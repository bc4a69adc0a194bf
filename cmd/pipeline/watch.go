package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/voc-pipeline/internal/processor"
	"github.com/nguyentantai21042004/voc-pipeline/internal/watcher"
	"github.com/nguyentantai21042004/voc-pipeline/pkg/executor"
)

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	cfg, log, err := setup(ctx)
	if err != nil {
		return err
	}
	defer log.Sync()

	proc := processor.New(cfg, executor.New(), log)

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	// Created before the first run so changes made during it are not missed.
	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Watch.Debounce)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		return err
	}
	defer w.Stop()

	if err := proc.Process(ctx, cfg.Paths.Input); err != nil {
		log.Error(ctx, "Initial run failed: %v", err)
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- w.Start(ctx)
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "VOC pipeline is watching %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error(ctx, "Watcher error: %v", err)
			return err
		}
		return nil
	}

	// Graceful shutdown: the watcher lets an in-flight run finish.
	log.Info(ctx, "Shutting down gracefully...")
	cancel()
	<-errChan

	log.Info(ctx, "VOC pipeline stopped")
	return nil
}

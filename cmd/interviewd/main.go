package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nikmy/interviewd/internal/api"
	"github.com/nikmy/interviewd/internal/availability"
	"github.com/nikmy/interviewd/internal/calendar"
	"github.com/nikmy/interviewd/internal/interviews"
	"github.com/nikmy/interviewd/internal/jobs"
	"github.com/nikmy/interviewd/internal/notify"
	"github.com/nikmy/interviewd/internal/reconciler"
	"github.com/nikmy/interviewd/internal/repo"
	"github.com/nikmy/interviewd/pkg/errors"
	"github.com/nikmy/interviewd/pkg/logger"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGABRT)
	defer cancel()

	client, err := repo.Connect(ctx, cfg.Mongo, log)
	if err != nil {
		log.Panic(errors.WrapFail(err, "connect to mongo"))
	}
	defer client.Close(context.Background())

	err = client.EnsureIndexes(ctx)
	if err != nil {
		log.Panic(errors.WrapFail(err, "ensure indexes"))
	}

	cal, err := calendar.New(ctx, cfg.Calendar)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init calendar provider"))
	}

	profiles := availability.NewStore(client)
	storage := interviews.NewStorage(client)
	resolver := jobs.NewResolver(client)
	notifier := notify.NewFromConfig(cfg.Notify, log)

	service := interviews.NewService(storage, resolver, cal, notifier, log)
	generator := availability.NewGenerator(profiles, storage)

	go reconciler.New(cfg.Reconciler, storage, service, cal, log).Run(ctx)

	server := api.NewServer(cfg.API, log, profiles, generator, service)

	stopped := make(chan struct{})
	context.AfterFunc(ctx, func() {
		stdlog.Println("Graceful shutdown...")

		shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
		defer stop()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			log.Error(err)
		}
		stopped <- struct{}{}
	})

	stdlog.Println("Serving API on", cfg.API.HTTP.Addr)

	err = server.Serve(ctx)
	if err != nil {
		log.Error(errors.WrapFail(err, "serve api"))
	}

	// Serve may fail before any signal arrives (e.g. the port is taken);
	// cancelling here arms the shutdown hook either way.
	cancel()
	<-stopped
	stdlog.Println("Shutdown complete")
}

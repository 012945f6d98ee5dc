package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamecore/pkg/actions"
	"gamecore/pkg/commands"
	"gamecore/pkg/config"
	"gamecore/pkg/host"
	"gamecore/pkg/log"
	"gamecore/pkg/queue"
	"gamecore/pkg/repositories"
	"gamecore/pkg/state"
	"gamecore/pkg/version"
	"gamecore/pkg/workers"
)

const journalQueueSize = 1024

func main() {
	port := flag.Int("port", 0, "HTTP port to listen on (overrides GAMECORE_PORT)")
	logLevel := flag.String("log-level", "", "Log level (overrides GAMECORE_LOG_LEVEL)")
	builtinRules := flag.Bool("builtin-rules", false, "Register the built-in action rules")
	flag.Parse()

	cfg, err := config.LoadHostConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *builtinRules {
		cfg.BuiltinRules = true
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting gamehost version %s", version.Get())
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var repository repositories.Repository
	switch {
	case cfg.DatabaseURL != "":
		repository = repositories.NewPostgresRepository(ctx, cfg.DatabaseURL)
	case cfg.SQLitePath != "":
		repository, err = repositories.NewSQLiteRepository(ctx, cfg.SQLitePath)
		if err != nil {
			panic(fmt.Sprintf("Failed to open sqlite repository: %v", err))
		}
	default:
		log.Warn("No repository configured, state will not be persisted")
	}

	stateManager := state.NewInMemoryStateManager()

	registry := actions.NewRegistry()
	if cfg.BuiltinRules {
		actions.RegisterBuiltins(registry)
		log.Info("Registered built-in action rules")
	}

	events := host.NewEventBroker()

	// only journal actions when there is somewhere to drain them to
	var journalQueue queue.Queue
	if repository != nil {
		journalQueue = queue.NewInMemoryQueue(journalQueueSize)
	}

	processor := actions.NewProcessor(actions.NewProcessorOptions{
		Registry:     registry,
		StateManager: stateManager,
		JournalQueue: journalQueue,
		OnCommit:     events.Publish,
	})

	if repository != nil {
		snapshotWorker := workers.NewSnapshotWorker(workers.NewSnapshotWorkerOptions{
			Repository:   repository,
			StateManager: stateManager,
			Interval:     cfg.SnapshotInterval,
		})
		if err := snapshotWorker.Restore(ctx); err != nil {
			log.Error("Failed to restore snapshot: %v", err)
		}
		go snapshotWorker.Start(ctx)

		journalWorker := workers.NewJournalWorker(workers.NewJournalWorkerOptions{
			Repository:   repository,
			JournalQueue: journalQueue,
			Interval:     cfg.JournalInterval,
		})
		go journalWorker.Start(ctx)
	}

	dispatcher := commands.NewGameDispatcher(stateManager, processor)

	var tlsConfig *host.TLSConfig
	if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		tlsConfig = &host.TLSConfig{
			CertFile: cfg.TLSCertFile,
			KeyFile:  cfg.TLSKeyFile,
		}
	}

	hostServer := host.NewHostServer(host.NewHostServerOptions{
		Port:       cfg.Port,
		TLS:        tlsConfig,
		Dispatcher: dispatcher,
		Events:     events,
	})

	go func() {
		<-ctx.Done()
		log.Info("Shutting down")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := hostServer.Stop(shutdownCtx); err != nil {
			log.Error("Failed to stop host server: %v", err)
		}
	}()

	hostServer.Start()

	if repository != nil {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer closeCancel()
		if err := repository.Close(closeCtx); err != nil {
			log.Error("Failed to close repository: %v", err)
		}
	}
}

package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"toko-pos/internal/config"
	"toko-pos/internal/connections/database"
	"toko-pos/internal/connections/rabbitmq"
	"toko-pos/internal/handlers"
	"toko-pos/internal/logger"
	"toko-pos/internal/notify"
	"toko-pos/internal/repository"
	"toko-pos/internal/service"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config")
	port := flag.Int("port", 0, "http port (overrides config)")
	seed := flag.Bool("seed", false, "insert sample tables and menu products on startup")
	flag.Parse()

	log := logger.New("toko-pos")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("config_load_failed", "path", *configPath, "error", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		log.Error("database_connect_failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	store := repository.NewPostgres(pool)
	if err := store.Migrate(ctx); err != nil {
		log.Error("migration_failed", "error", err)
		os.Exit(1)
	}
	if *seed {
		if err := store.Seed(ctx); err != nil {
			log.Error("seed_failed", "error", err)
			os.Exit(1)
		}
		log.Info("seed_applied")
	}

	var publisher notify.Publisher = notify.Noop{}
	if cfg.RabbitMQ.Enabled() {
		client, err := rabbitmq.Dial(rabbitmq.Config{
			Host:     cfg.RabbitMQ.Host,
			Port:     cfg.RabbitMQ.Port,
			User:     cfg.RabbitMQ.User,
			Password: cfg.RabbitMQ.Password,
			VHost:    cfg.RabbitMQ.VHost,
		})
		if err != nil {
			log.Error("rabbitmq_connect_failed", "error", err)
			os.Exit(1)
		}
		defer client.Close()

		amqpPub, err := notify.NewAMQP(client)
		if err != nil {
			log.Error("rabbitmq_setup_failed", "error", err)
			os.Exit(1)
		}
		publisher = amqpPub
	}

	svc := service.New(store, publisher, log)
	handler := handlers.New(svc, log)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Server.Port),
		Handler:           handlers.NewRouter(handler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info("service_started", "port", cfg.Server.Port)
	if err := run(ctx, srv); err != nil {
		log.Error("server_failed", "error", err)
		os.Exit(1)
	}
	log.Info("service_stopped")
}

// run serves until the context is canceled, then shuts down gracefully.
func run(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

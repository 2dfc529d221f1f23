package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/alexcesaro/statsd"

	kafkalib "github.com/s21platform/kafka-lib"
	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/s21platform/broadcast-service/internal/config"
	"github.com/s21platform/broadcast-service/internal/databus/events"
	"github.com/s21platform/broadcast-service/internal/dispatch"
	"github.com/s21platform/broadcast-service/internal/pkg/provider"
	"github.com/s21platform/broadcast-service/internal/pkg/validator"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	metrics, err := pkg.NewMetrics(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Service.Name, cfg.Platform.Env)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect graphite: %v", err))
	}

	eventMetrics, err := statsd.New(
		statsd.Address(fmt.Sprintf("%s:%d", cfg.Metrics.Host, cfg.Metrics.Port)),
		statsd.Prefix(fmt.Sprintf("%s.%s", cfg.Platform.Env, cfg.Service.Name)),
		statsd.ErrorHandler(func(err error) {
			logger.Warn(fmt.Sprintf("failed to send metrics: %v", err))
		}),
	)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect graphite: %v", err))
	}
	defer eventMetrics.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx = context.WithValue(ctx, config.KeyMetrics, metrics)
	ctx = context.WithValue(ctx, config.KeyLogger, logger)

	broadcaster, err := provider.New(ctx, cfg)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create broadcast provider: %v", err))
		return
	}
	defer broadcaster.Close()

	eventsHandler := events.New(dispatch.New(broadcaster), validator.New(), eventMetrics)

	consumerConfig := kafkalib.DefaultConsumerConfig(
		cfg.Kafka.Host,
		cfg.Kafka.Port,
		cfg.Kafka.Topic,
		cfg.Kafka.GroupID,
	)
	consumer, err := kafkalib.NewConsumer(consumerConfig, metrics)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create consumer: %v", err))
		return
	}

	consumer.RegisterHandler(ctx, eventsHandler.Handler)

	<-ctx.Done()
}

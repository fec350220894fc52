package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/dentaltrip/config"
	"github.com/Domenick1991/dentaltrip/internal/kafka"
	"github.com/Domenick1991/dentaltrip/internal/notify"
	kafkaGo "github.com/segmentio/kafka-go"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	sender := notify.NewSender()
	log.Printf("worker consuming %s as %s", cfg.Kafka.NotificationsTopic, cfg.Kafka.GroupID)

	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		event, err := kafka.DecodeBookingEvent(msg)
		if err != nil {
			log.Printf("skip message: %v", err)
			return nil
		}
		return sender.Send(ctx, event)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("consumer stopped: %v", err)
	}
	log.Printf("worker shut down")
}

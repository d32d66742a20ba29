package events

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"service/internal/entities"
	"service/pkg/logger"
)

// EventsGateway публикует события смены статуса отслеживания в кафку.
// Публикация best-effort: сбой не влияет на уже зафиксированный переход,
// поэтому ошибки только логируются.
type EventsGateway struct {
	log      logger.Logger
	producer syncProducer
	topic    string
}

func New(log logger.Logger, producer syncProducer, topic string) *EventsGateway {
	return &EventsGateway{
		log:      log,
		producer: producer,
		topic:    topic,
	}
}

func (g *EventsGateway) PublishStatusChanged(_ context.Context, event entities.TrackingStatusEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		g.log.Error("failed to marshal tracking status event",
			logger.NewField("shipmentID", event.ShipmentID),
			logger.NewField("error", err),
		)
		EventsPublishTotal.WithLabelValues(g.topic, resultError).Inc()
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(event.ShipmentID),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := g.producer.SendMessage(msg)
	if err != nil {
		g.log.Error("failed to publish tracking status event",
			logger.NewField("shipmentID", event.ShipmentID),
			logger.NewField("status", event.Status),
			logger.NewField("error", err),
		)
		EventsPublishTotal.WithLabelValues(g.topic, resultError).Inc()
		return
	}

	g.log.Debug("tracking status event published",
		logger.NewField("shipmentID", event.ShipmentID),
		logger.NewField("status", event.Status),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	)
	EventsPublishTotal.WithLabelValues(g.topic, resultOK).Inc()
}

package shipment_dispatched

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"service/internal/entities"
	trackingservice "service/internal/service/tracking"
	"service/pkg/logger"
)

type Handler struct {
	trackingService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, trackingService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		trackingService:          trackingService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("shipment.dispatched: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("shipment.dispatched: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event entities.ShipmentDispatched
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("shipment.dispatched handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("shipment", event.ShipmentID),
		logger.NewField("vehicle", event.VehicleID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("shipment.dispatched processing")

	tracked, err := h.trackingService.Initialize(ctx, entities.TrackingInit{
		ShipmentID:     event.ShipmentID,
		VehicleID:      event.VehicleID,
		DriverID:       event.DriverID,
		Origin:         event.Origin,
		Destination:    event.Destination,
		Waypoints:      event.Waypoints,
		NumCheckpoints: event.NumCheckpoints,
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.dispatched handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, trackingservice.ErrTrackingExists):
			// повторная доставка сообщения, запись уже есть
			msgLog.Warn("shipment.dispatched handler tracking already initialized")

		case errors.Is(err, trackingservice.ErrMissingRequiredFields),
			errors.Is(err, trackingservice.ErrInvalidCoordinates):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.dispatched handler invalid event payload")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.dispatched handler failed to initialize tracking")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("shipment", tracked.ShipmentID),
		logger.NewField("tracking", tracked.ID),
		logger.NewField("status", tracked.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("shipment.dispatched: processed")

	sess.MarkMessage(message, "")
	return false
}

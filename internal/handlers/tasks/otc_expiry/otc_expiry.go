package otc_expiry

import (
	"context"
	"time"

	"service/pkg/logger"
)

type Service interface {
	ExpireStale(ctx context.Context) (int64, error)
}

// OTCExpiry периодически помечает просроченные одноразовые коды доставки.
type OTCExpiry struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOTCExpiry(log logger.Logger, service Service, interval time.Duration) *OTCExpiry {
	return &OTCExpiry{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OTCExpiry) TTL() time.Duration {
	return o.interval
}

func (o *OTCExpiry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	rowsAffected, err := o.service.ExpireStale(ctxWithTimeout)

	if rowsAffected > 0 {
		o.log.With(
			logger.NewField("expired_codes", rowsAffected),
		).Info("otc expiry")
	}

	return err
}

func (o *OTCExpiry) Info() string {
	return "otc expiry"
}

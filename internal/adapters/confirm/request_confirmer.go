package confirm

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// RequestConfirmer реализует ConfirmationPort по флагу, который входящий
// адаптер кладет в контекст запроса (REST: query-параметр confirm=true).
// Ядро при этом ничего не знает про HTTP: ему виден только порт.
type RequestConfirmer struct {
	logger port.LoggerPort
}

func NewRequestConfirmer(logger port.LoggerPort) *RequestConfirmer {
	return &RequestConfirmer{
		logger: logger.WithFields(port.Fields{"component": "request_confirmer"}),
	}
}

func (c *RequestConfirmer) ConfirmRemoval(ctx context.Context, item domain.PropertyItem) (bool, error) {
	confirmed := contextkeys.ConfirmationFromContext(ctx)
	c.logger.Debug("Removal confirmation requested", port.Fields{
		"listing_id": item.ID,
		"title":      item.Title,
		"confirmed":  confirmed,
	})
	return confirmed, nil
}

var _ port.ConfirmationPort = (*RequestConfirmer)(nil)

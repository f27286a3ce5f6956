// Package alerts fans newly stored frauds out to whoever is watching.
package alerts

import (
	"context"
	"errors"

	"fraud-detection-backend/internal/models"
)

// Notifier is told about every fraud right after it is stored.
type Notifier interface {
	NotifyFraud(ctx context.Context, fraud models.Fraud) error
}

// Multi notifies every sink and joins their errors.
type Multi []Notifier

func (m Multi) NotifyFraud(ctx context.Context, fraud models.Fraud) error {
	var errs []error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.NotifyFraud(ctx, fraud); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

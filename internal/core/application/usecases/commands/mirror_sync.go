package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/mirror"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// syncMirror writes the fulfillment mirror for a custom order inside the
// caller's transaction. Catalog orders have no mirror and are skipped. A
// missing record is created, an existing one is refreshed.
func syncMirror(ctx context.Context, mirrors ports.MirrorRepository, o *order.Order) error {
	if o.Kind() != order.KindCustom {
		return nil
	}

	record, err := mirrors.GetByOrder(ctx, o.ID())
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}

		record, err = mirror.NewFulfillmentRecord(o)
		if err != nil {
			return err
		}
		return mirrors.Add(ctx, record)
	}

	record.SyncFrom(o)
	return mirrors.Update(ctx, record)
}

// Package queries contains read-only use cases. Handlers read through the
// repository ports outside of any transaction and return flat response structs.
package queries

import (
	"time"

	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/core/domain/model/order"
)

// OrderResponse is the read model of an order.
type OrderResponse struct {
	ID             kernel.UUID
	WizardID       kernel.UUID
	WandID         kernel.UUID
	PaymentRef     string
	Provider       string
	Address        string
	TrackingNumber *string
	CreatedAt      time.Time
	DispatchedAt   *time.Time
	Status         string
	Completed      bool
	Review         *string
	Version        int
}

func newOrderResponse(o *order.Order) OrderResponse {
	resp := OrderResponse{
		ID:           o.ID(),
		WizardID:     o.WizardID(),
		WandID:       o.WandID(),
		PaymentRef:   o.PaymentRef(),
		Provider:     o.Provider().String(),
		Address:      o.Address().String(),
		CreatedAt:    o.CreatedAt(),
		DispatchedAt: o.DispatchedAt(),
		Status:       o.Status().String(),
		Completed:    o.Completed(),
		Version:      o.Version(),
	}
	if tn := o.TrackingNumber(); tn != nil {
		s := tn.String()
		resp.TrackingNumber = &s
	}
	if r := o.Review(); r != nil {
		s := r.String()
		resp.Review = &s
	}
	return resp
}

package http

import (
	"time"

	"wandshop/internal/core/application/usecases/queries"
	"wandshop/internal/core/domain/model/kernel"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Request and response bodies of the API contract in openapi.yaml.

type NewOrder struct {
	WizardID   openapi_types.UUID  `json:"wizardId"`
	WandID     *openapi_types.UUID `json:"wandId,omitempty"`
	Score      *int                `json:"score,omitempty"`
	PaymentRef string              `json:"paymentRef"`
	Provider   string              `json:"provider"`
	Address    string              `json:"address"`
}

type OrderUpdate struct {
	PaymentRef *string `json:"paymentRef,omitempty"`
	Address    *string `json:"address,omitempty"`
}

type NewReview struct {
	Text string `json:"text"`
}

type NewAnswer struct {
	QuizID   openapi_types.UUID `json:"quizId"`
	WizardID openapi_types.UUID `json:"wizardId"`
	Score    int                `json:"score"`
}

type Order struct {
	ID             openapi_types.UUID `json:"id"`
	WizardID       openapi_types.UUID `json:"wizardId"`
	WandID         openapi_types.UUID `json:"wandId"`
	PaymentRef     string             `json:"paymentRef"`
	Provider       string             `json:"provider"`
	Address        string             `json:"address"`
	TrackingNumber *string            `json:"trackingNumber,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	DispatchedAt   *time.Time         `json:"dispatchedAt,omitempty"`
	Status         string             `json:"status"`
	Completed      bool               `json:"completed"`
	Review         *string            `json:"review,omitempty"`
	Version        int                `json:"version"`
}

type Answer struct {
	ID        openapi_types.UUID `json:"id"`
	QuizID    openapi_types.UUID `json:"quizId"`
	WizardID  openapi_types.UUID `json:"wizardId"`
	WandID    openapi_types.UUID `json:"wandId"`
	Score     int                `json:"score"`
	CreatedAt time.Time          `json:"createdAt"`
}

type Wand struct {
	ID          openapi_types.UUID `json:"id"`
	Name        string             `json:"name"`
	Wood        string             `json:"wood"`
	Core        string             `json:"core"`
	Length      string             `json:"length"`
	Flexibility string             `json:"flexibility"`
	Price       string             `json:"price"`
	Status      string             `json:"status"`
	Reserved    bool               `json:"reserved"`
}

func toOrder(o queries.OrderResponse) Order {
	return Order{
		ID:             o.ID.Bytes(),
		WizardID:       o.WizardID.Bytes(),
		WandID:         o.WandID.Bytes(),
		PaymentRef:     o.PaymentRef,
		Provider:       o.Provider,
		Address:        o.Address,
		TrackingNumber: o.TrackingNumber,
		CreatedAt:      o.CreatedAt.UTC(),
		DispatchedAt:   utcPtr(o.DispatchedAt),
		Status:         o.Status,
		Completed:      o.Completed,
		Review:         o.Review,
		Version:        o.Version,
	}
}

func toAnswer(a queries.GetAnswerQueryResponse) Answer {
	return Answer{
		ID:        a.ID.Bytes(),
		QuizID:    a.QuizID.Bytes(),
		WizardID:  a.WizardID.Bytes(),
		WandID:    a.WandID.Bytes(),
		Score:     a.Score,
		CreatedAt: a.CreatedAt.UTC(),
	}
}

func toWand(w queries.GetWandQueryResponse) Wand {
	return Wand{
		ID:          w.ID.Bytes(),
		Name:        w.Name,
		Wood:        w.Wood,
		Core:        w.Core,
		Length:      w.Length.String(),
		Flexibility: w.Flexibility,
		Price:       w.Price.StringFixed(2),
		Status:      w.Status,
		Reserved:    w.Reserved,
	}
}

func fromAPI(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromString(id.String())
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

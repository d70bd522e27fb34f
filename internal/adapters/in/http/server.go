// Package http exposes the wand shop over a JSON API described by openapi.yaml.
package http

import (
	"context"
	"fmt"
	"net/http"

	"wandshop/internal/core/application/usecases/commands"
	"wandshop/internal/core/application/usecases/queries"
	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"github.com/samber/lo"
)

// Handlers bundles the use cases the API dispatches to.
type Handlers struct {
	CreateOrder   commands.CreateOrderCommandHandler
	UpdateOrder   commands.UpdateOrderCommandHandler
	DeleteOrder   commands.DeleteOrderCommandHandler
	PayOrder      commands.PayOrderCommandHandler
	DispatchOrder commands.DispatchOrderCommandHandler
	CompleteOrder commands.CompleteOrderCommandHandler
	CancelOrder   commands.CancelOrderCommandHandler
	RefundOrder   commands.RefundOrderCommandHandler
	SubmitReview  commands.SubmitReviewCommandHandler
	SubmitAnswer  commands.SubmitAnswerCommandHandler
	DeleteWizard  commands.DeleteWizardCommandHandler

	GetOrder   queries.GetOrderQueryHandler
	ListOrders queries.ListOrdersQueryHandler
	GetWand    queries.GetWandQueryHandler
	GetAnswer  queries.GetAnswerQueryHandler
}

// Server coordinates between HTTP handlers and application use cases. Errors are
// returned to echo and rendered as problems by NewErrorHandler.
type Server struct {
	h Handlers
}

func NewServer(h Handlers) *Server {
	return &Server{h: h}
}

// RegisterHandlers mounts every API route under BasePath.
func (s *Server) RegisterHandlers(e *echo.Echo) {
	g := e.Group(BasePath)
	g.GET("/orders", s.ListOrders)
	g.POST("/orders", s.CreateOrder)
	g.GET("/orders/:id", s.GetOrder)
	g.PATCH("/orders/:id", s.UpdateOrder)
	g.DELETE("/orders/:id", s.DeleteOrder)
	g.POST("/orders/:id/pay", s.PayOrder)
	g.POST("/orders/:id/dispatch", s.DispatchOrder)
	g.POST("/orders/:id/complete", s.CompleteOrder)
	g.POST("/orders/:id/cancel", s.CancelOrder)
	g.POST("/orders/:id/refund", s.RefundOrder)
	g.POST("/orders/:id/review", s.SubmitReview)
	g.POST("/answers", s.SubmitAnswer)
	g.GET("/wands/:id", s.GetWand)
	g.DELETE("/wizards/:id", s.DeleteWizard)
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	var statuses *[]string
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &statuses); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	query, err := queries.NewListOrdersQuery(lo.FromPtr(statuses)...)
	if err != nil {
		return err
	}

	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders. The body names either a wand or a quiz
// score to allocate one from.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	wizardID, err := fromAPI(body.WizardID)
	if err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	var cmd commands.CreateOrderCommand
	switch {
	case body.WandID != nil && body.Score != nil:
		return errs.NewValueIsInvalidErrorWithCause("order", fmt.Errorf("wandId and score are mutually exclusive"))
	case body.WandID != nil:
		wandID, idErr := fromAPI(*body.WandID)
		if idErr != nil {
			return idErr
		}
		cmd, err = commands.NewCreateOrderCommand(orderID, wizardID, wandID, body.PaymentRef, body.Provider, body.Address)
	case body.Score != nil:
		cmd, err = commands.NewCreateOrderFromScoreCommand(orderID, wizardID, *body.Score, body.PaymentRef, body.Provider, body.Address)
	default:
		return errs.NewValueIsRequiredError("wandId or score")
	}
	if err != nil {
		return err
	}

	if err = s.h.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondOrder(ctx, http.StatusCreated, orderID)
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return s.respondOrder(ctx, http.StatusOK, id)
}

// UpdateOrder handles PATCH /api/v1/orders/{id}.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	var body OrderUpdate
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	return s.transition(ctx, func(c context.Context, id kernel.UUID) error {
		cmd, err := commands.NewUpdateOrderCommand(id, body.PaymentRef, body.Address)
		if err != nil {
			return err
		}
		return s.h.UpdateOrder.Handle(c, cmd)
	})
}

// DeleteOrder handles DELETE /api/v1/orders/{id}.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return err
	}
	if err = s.h.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) PayOrder(ctx echo.Context) error {
	return s.transition(ctx, func(c context.Context, id kernel.UUID) error {
		cmd, err := commands.NewPayOrderCommand(id)
		if err != nil {
			return err
		}
		return s.h.PayOrder.Handle(c, cmd)
	})
}

func (s *Server) DispatchOrder(ctx echo.Context) error {
	return s.transition(ctx, func(c context.Context, id kernel.UUID) error {
		cmd, err := commands.NewDispatchOrderCommand(id)
		if err != nil {
			return err
		}
		return s.h.DispatchOrder.Handle(c, cmd)
	})
}

func (s *Server) CompleteOrder(ctx echo.Context) error {
	return s.transition(ctx, func(c context.Context, id kernel.UUID) error {
		cmd, err := commands.NewCompleteOrderCommand(id)
		if err != nil {
			return err
		}
		return s.h.CompleteOrder.Handle(c, cmd)
	})
}

func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.transition(ctx, func(c context.Context, id kernel.UUID) error {
		cmd, err := commands.NewCancelOrderCommand(id)
		if err != nil {
			return err
		}
		return s.h.CancelOrder.Handle(c, cmd)
	})
}

func (s *Server) RefundOrder(ctx echo.Context) error {
	return s.transition(ctx, func(c context.Context, id kernel.UUID) error {
		cmd, err := commands.NewRefundOrderCommand(id)
		if err != nil {
			return err
		}
		return s.h.RefundOrder.Handle(c, cmd)
	})
}

// SubmitReview handles POST /api/v1/orders/{id}/review. An unsafe review is
// answered with 422 and the order keeps no review.
func (s *Server) SubmitReview(ctx echo.Context) error {
	var body NewReview
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	return s.transition(ctx, func(c context.Context, id kernel.UUID) error {
		cmd, err := commands.NewSubmitReviewCommand(id, body.Text)
		if err != nil {
			return err
		}
		return s.h.SubmitReview.Handle(c, cmd)
	})
}

// SubmitAnswer handles POST /api/v1/answers and returns the allocated wand.
func (s *Server) SubmitAnswer(ctx echo.Context) error {
	var body NewAnswer
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	quizID, err := fromAPI(body.QuizID)
	if err != nil {
		return err
	}
	wizardID, err := fromAPI(body.WizardID)
	if err != nil {
		return err
	}

	answerID := kernel.NewUUID()
	cmd, err := commands.NewSubmitAnswerCommand(answerID, quizID, wizardID, body.Score)
	if err != nil {
		return err
	}
	if err = s.h.SubmitAnswer.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	query, err := queries.NewGetAnswerQuery(answerID)
	if err != nil {
		return err
	}
	answer, err := s.h.GetAnswer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toAnswer(answer))
}

// GetWand handles GET /api/v1/wands/{id}.
func (s *Server) GetWand(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetWandQuery(id)
	if err != nil {
		return err
	}
	w, err := s.h.GetWand.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toWand(w))
}

// DeleteWizard handles DELETE /api/v1/wizards/{id}: answers, then orders, then
// the wizard, in one transaction.
func (s *Server) DeleteWizard(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteWizardCommand(id)
	if err != nil {
		return err
	}
	if err = s.h.DeleteWizard.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// transition runs a command against the order in the path and answers with the
// order as stored afterwards.
func (s *Server) transition(ctx echo.Context, run func(context.Context, kernel.UUID) error) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	if err = run(ctx.Request().Context(), id); err != nil {
		return err
	}
	return s.respondOrder(ctx, http.StatusOK, id)
}

func (s *Server) respondOrder(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}
	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(status, toOrder(o))
}

func bindID(ctx echo.Context) (kernel.UUID, error) {
	var raw string
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &raw, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return kernel.UUIDFromString(raw)
}

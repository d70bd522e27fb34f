// Package temporal runs deferred deliveries as durable Temporal workflows: a timer
// followed by a single DeliverOrder activity. The timer survives process restarts.
package temporal

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

const (
	// DeliveryWorkflowName is the public identifier for registering the workflow.
	DeliveryWorkflowName = "orders.workflows.Delivery"
	// DeliveryTaskQueue is the queue consumed by the worker processing deliveries.
	DeliveryTaskQueue = "WAND_DELIVERY"
)

type DeliveryWorkflowInput struct {
	OrderID string
	Delay   time.Duration
}

// DeliveryWorkflow waits for the delay and then delivers the order once. A failed
// delivery is logged and not retried; the overdue sweep picks the order up.
func DeliveryWorkflow(ctx workflow.Context, input DeliveryWorkflowInput) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("DeliveryWorkflow started", "orderId", input.OrderID, "delay", input.Delay)

	if err := workflow.Sleep(ctx, input.Delay); err != nil {
		return err
	}

	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	})

	err := workflow.ExecuteActivity(ctx, DeliverOrderActivityName, input.OrderID).Get(ctx, nil)
	if err != nil {
		logger.Error("DeliveryWorkflow failed to deliver", "orderId", input.OrderID, "error", err)
		return nil
	}

	logger.Info("DeliveryWorkflow completed", "orderId", input.OrderID)
	return nil
}

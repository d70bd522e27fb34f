package temporal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wandshop/internal/core/domain/model/kernel"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"
)

// Scheduler implements ports.DeliveryScheduler by starting a DeliveryWorkflow. It
// does not wait for the workflow to finish.
type Scheduler struct {
	client    client.Client
	taskQueue string
}

func NewScheduler(c client.Client) *Scheduler {
	return &Scheduler{client: c, taskQueue: DeliveryTaskQueue}
}

func (s *Scheduler) ScheduleDelivery(ctx context.Context, orderID kernel.UUID, delay time.Duration) error {
	if s == nil || s.client == nil {
		return errors.New("temporal delivery scheduler not configured")
	}

	options := client.StartWorkflowOptions{
		ID:        DeliveryWorkflowID(orderID),
		TaskQueue: s.taskQueue,
	}
	_, err := s.client.ExecuteWorkflow(ctx, options, DeliveryWorkflowName, DeliveryWorkflowInput{
		OrderID: orderID.String(),
		Delay:   delay,
	})
	if err != nil {
		return fmt.Errorf("start delivery workflow: %w", err)
	}
	return nil
}

// DeliveryWorkflowID is deterministic, so an order is never delivered by two
// concurrent workflows.
func DeliveryWorkflowID(orderID kernel.UUID) string {
	return "order-delivery-" + orderID.String()
}

// NewWorker registers the delivery workflow and activity on the task queue.
func NewWorker(c client.Client, activities *Activities) worker.Worker {
	w := worker.New(c, DeliveryTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(DeliveryWorkflow, workflow.RegisterOptions{Name: DeliveryWorkflowName})
	w.RegisterActivityWithOptions(activities.DeliverOrder, activity.RegisterOptions{Name: DeliverOrderActivityName})
	return w
}

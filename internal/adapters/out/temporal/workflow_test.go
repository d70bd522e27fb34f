package temporal_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"wandshop/internal/adapters/out/temporal"
	"wandshop/internal/core/application/usecases/commands"
	"wandshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/mocks"
	"go.temporal.io/sdk/testsuite"
	"go.temporal.io/sdk/workflow"
)

type DeliveryWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite

	env *testsuite.TestWorkflowEnvironment
}

func (s *DeliveryWorkflowTestSuite) SetupTest() {
	s.env = s.NewTestWorkflowEnvironment()
	s.env.RegisterWorkflowWithOptions(temporal.DeliveryWorkflow, workflow.RegisterOptions{Name: temporal.DeliveryWorkflowName})
	s.env.RegisterActivityWithOptions(
		func(context.Context, string) error { return nil },
		activity.RegisterOptions{Name: temporal.DeliverOrderActivityName},
	)
}

func (s *DeliveryWorkflowTestSuite) AfterTest(_, _ string) {
	s.env.AssertExpectations(s.T())
}

func (s *DeliveryWorkflowTestSuite) TestDeliversAfterDelay() {
	orderID := kernel.NewUUID().String()
	var timers []time.Duration
	s.env.SetOnTimerScheduledListener(func(_ string, d time.Duration) {
		timers = append(timers, d)
	})
	s.env.OnActivity(temporal.DeliverOrderActivityName, mock.Anything, orderID).Return(nil).Once()

	s.env.ExecuteWorkflow(temporal.DeliveryWorkflowName, temporal.DeliveryWorkflowInput{
		OrderID: orderID,
		Delay:   10 * time.Second,
	})

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
	s.Equal([]time.Duration{10 * time.Second}, timers)
}

func (s *DeliveryWorkflowTestSuite) TestActivityFailureIsSwallowed() {
	orderID := kernel.NewUUID().String()
	s.env.OnActivity(temporal.DeliverOrderActivityName, mock.Anything, orderID).
		Return(errors.New("storage down")).Once()

	s.env.ExecuteWorkflow(temporal.DeliveryWorkflowName, temporal.DeliveryWorkflowInput{
		OrderID: orderID,
		Delay:   time.Second,
	})

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func TestDeliveryWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryWorkflowTestSuite))
}

type stubDeliverer struct {
	err    error
	called []kernel.UUID
}

func (s *stubDeliverer) Handle(_ context.Context, cmd commands.DeliverOrderCommand) error {
	s.called = append(s.called, cmd.OrderID())
	return s.err
}

type DeliverOrderActivityTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite
}

func (s *DeliverOrderActivityTestSuite) run(deliverer *stubDeliverer, orderID string) error {
	env := s.NewTestActivityEnvironment()
	activities := temporal.NewActivities(deliverer)
	env.RegisterActivity(activities.DeliverOrder)
	_, err := env.ExecuteActivity(activities.DeliverOrder, orderID)
	return err
}

func (s *DeliverOrderActivityTestSuite) TestDelivers() {
	id := kernel.NewUUID()
	deliverer := &stubDeliverer{}

	s.Require().NoError(s.run(deliverer, id.String()))
	s.Require().Len(deliverer.called, 1)
	s.True(deliverer.called[0].IsEqual(id))
}

func (s *DeliverOrderActivityTestSuite) TestOrderNoLongerDispatchedIsNoOp() {
	s.NoError(s.run(&stubDeliverer{err: commands.ErrOrderNotDispatched}, kernel.NewUUID().String()))
}

func (s *DeliverOrderActivityTestSuite) TestFailureIsReturned() {
	s.Error(s.run(&stubDeliverer{err: errors.New("boom")}, kernel.NewUUID().String()))
}

func (s *DeliverOrderActivityTestSuite) TestMalformedOrderID() {
	deliverer := &stubDeliverer{}
	s.Error(s.run(deliverer, "not-a-uuid"))
	s.Empty(deliverer.called)
}

func TestDeliverOrderActivityTestSuite(t *testing.T) {
	suite.Run(t, new(DeliverOrderActivityTestSuite))
}

func TestScheduler_StartsWorkflowWithoutWaiting(t *testing.T) {
	orderID := kernel.NewUUID()
	c := &mocks.Client{}
	c.On("ExecuteWorkflow",
		mock.Anything,
		mock.MatchedBy(func(o client.StartWorkflowOptions) bool {
			return o.ID == temporal.DeliveryWorkflowID(orderID) && o.TaskQueue == temporal.DeliveryTaskQueue
		}),
		temporal.DeliveryWorkflowName,
		temporal.DeliveryWorkflowInput{OrderID: orderID.String(), Delay: 10 * time.Second},
	).Return(&mocks.WorkflowRun{}, nil).Once()

	require.NoError(t, temporal.NewScheduler(c).ScheduleDelivery(t.Context(), orderID, 10*time.Second))
	c.AssertExpectations(t)
}

func TestScheduler_StartFailureIsReturned(t *testing.T) {
	c := &mocks.Client{}
	c.On("ExecuteWorkflow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("frontend unavailable")).Once()

	err := temporal.NewScheduler(c).ScheduleDelivery(t.Context(), kernel.NewUUID(), time.Second)
	require.ErrorContains(t, err, "frontend unavailable")
}

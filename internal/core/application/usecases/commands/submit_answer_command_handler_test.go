package commands_test

import (
	"testing"

	"wandshop/internal/core/application/usecases/commands"
	"wandshop/internal/core/domain/model/answer"
	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/core/domain/model/wand"
	"wandshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitAnswerCommand(t *testing.T) {
	_, err := commands.NewSubmitAnswerCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 0)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	cmd, err := commands.NewSubmitAnswerCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 12)
	require.NoError(t, err)
	assert.Equal(t, 12, cmd.Score())

	assert.ErrorIs(t, commands.SubmitAnswerCommand{}.Validate(), commands.ErrSubmitAnswerCommandIsNotConstructed)
}

func TestSubmitAnswerCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	newMocks := func() (*MockUoWFactory, *MockUoW, *MockWizardRepository, *MockWandRepository, *MockAnswerRepository) {
		wizards, wands, answers := new(MockWizardRepository), new(MockWandRepository), new(MockAnswerRepository)
		uow := new(MockUoW)
		uow.On("Begin", mock.Anything).Return(nil)
		uow.On("Rollback", mock.Anything).Return(nil)
		uow.On("WizardRepository").Return(wizards)
		uow.On("WandRepository").Return(wands)
		uow.On("AnswerRepository").Return(answers)
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow)
		return factory, uow, wizards, wands, answers
	}

	t.Run("stores the answer with the allocated wand", func(t *testing.T) {
		factory, uow, wizards, wands, answers := newMocks()
		wiz := fakeWizard(t)
		candidates := []*wand.Wand{fakeWand(t), fakeWand(t), fakeWand(t)}

		wizards.On("Get", ctx, wiz.ID()).Return(wiz, nil).Once()
		wands.On("CountAllocatable", ctx).Return(len(candidates), nil).Once()
		wands.On("GetAllocatableAt", ctx, 1).Return(candidates[1], nil).Once()
		answers.On("Add", ctx, mock.MatchedBy(func(a *answer.Answer) bool {
			return a.WandID().IsEqual(candidates[1].ID()) && a.Score() == 7
		})).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		cmd, _ := commands.NewSubmitAnswerCommand(kernel.NewUUID(), kernel.NewUUID(), wiz.ID(), 7)
		require.NoError(t, commands.NewSubmitAnswerCommandHandler(factory).Handle(ctx, cmd))

		answers.AssertExpectations(t)
		assert.True(t, candidates[1].IsAllocatable(), "allocation alone does not claim the wand")
		wands.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("no inventory", func(t *testing.T) {
		factory, uow, wizards, wands, answers := newMocks()
		wiz := fakeWizard(t)
		wizards.On("Get", ctx, wiz.ID()).Return(wiz, nil).Once()
		wands.On("CountAllocatable", ctx).Return(0, nil).Once()

		cmd, _ := commands.NewSubmitAnswerCommand(kernel.NewUUID(), kernel.NewUUID(), wiz.ID(), 3)
		err := commands.NewSubmitAnswerCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrNoInventory)
		answers.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}

package commands_test

import (
	"context"
	"errors"
	"testing"

	"flowtrack/internal/core/application/usecases/commands"
	"flowtrack/internal/core/domain/model/areamode"
	"flowtrack/internal/core/domain/model/kernel"
	"flowtrack/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type AreaModeRepo struct{ mock.Mock }

func (m *AreaModeRepo) Get(ctx context.Context) (areamode.ModeSet, error) {
	args := m.Called(ctx)
	return args.Get(0).(areamode.ModeSet), args.Error(1)
}

func (m *AreaModeRepo) Save(ctx context.Context, modes areamode.ModeSet) error {
	args := m.Called(ctx, modes)
	return args.Error(0)
}

type ModeUnitOfWork struct{ mock.Mock }

func (m *ModeUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *ModeUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *ModeUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *ModeUnitOfWork) AreaModeRepository() ports.AreaModeRepository {
	args := m.Called()
	return args.Get(0).(ports.AreaModeRepository)
}

type ModeUoWFactory struct{ mock.Mock }

func (m *ModeUoWFactory) Create() commands.ModeUoW {
	args := m.Called()
	return args.Get(0).(commands.ModeUoW)
}

func TestNewSetAreaModesCommand_ValidModeSet(t *testing.T) {
	modes, err := areamode.NewModeSet(map[kernel.Area]areamode.Mode{
		kernel.AreaWarehouse:  areamode.ModeManual,
		kernel.AreaProduction: areamode.ModeAuto,
		kernel.AreaLogistics:  areamode.ModeAuto,
	})
	require.NoError(t, err)

	cmd, err := commands.NewSetAreaModesCommand(modes)

	require.NoError(t, err)
	assert.Equal(t, areamode.ModeManual, cmd.Modes().ModeOf(kernel.AreaWarehouse))
}

func TestNewSetAreaModesCommand_RejectsUnconstructedModeSet(t *testing.T) {
	var modes areamode.ModeSet

	_, err := commands.NewSetAreaModesCommand(modes)

	require.Error(t, err)
}

func TestSetAreaModesCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	modeRepo := new(AreaModeRepo)
	uow := new(ModeUnitOfWork)
	factory := new(ModeUoWFactory)

	cmd, err := commands.NewSetAreaModesCommand(areamode.DefaultModeSet())
	require.NoError(t, err)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AreaModeRepository").Return(modeRepo).Once(),
		modeRepo.On("Save", ctx, cmd.Modes()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewSetAreaModesCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	modeRepo.AssertExpectations(t)
}

func TestSetAreaModesCommandHandler_Handle_SaveError(t *testing.T) {
	ctx := t.Context()

	modeRepo := new(AreaModeRepo)
	uow := new(ModeUnitOfWork)
	factory := new(ModeUoWFactory)

	cmd, err := commands.NewSetAreaModesCommand(areamode.DefaultModeSet())
	require.NoError(t, err)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AreaModeRepository").Return(modeRepo).Once(),
		modeRepo.On("Save", ctx, cmd.Modes()).Return(errors.New("save error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewSetAreaModesCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save error")
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	modeRepo.AssertExpectations(t)
}

func TestSetAreaModesCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(ModeUoWFactory)
	cmd := commands.SetAreaModesCommand{} // not constructed properly

	handler := commands.NewSetAreaModesCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrSetAreaModesCommandIsNotConstructed)
}

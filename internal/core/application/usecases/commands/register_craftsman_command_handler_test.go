package commands_test

import (
	"context"
	"testing"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/craftsman"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCraftsmanUoW struct {
	mock.Mock
}

func (m *MockCraftsmanUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCraftsmanUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCraftsmanUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCraftsmanUoW) CraftsmanRepository() ports.CraftsmanRepository {
	args := m.Called()
	return args.Get(0).(ports.CraftsmanRepository)
}

type MockCraftsmanUoWFactory struct {
	mock.Mock
}

func (m *MockCraftsmanUoWFactory) Create() commands.CraftsmanUoW {
	args := m.Called()
	return args.Get(0).(commands.CraftsmanUoW)
}

func TestRegisterCraftsmanCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterCraftsmanCommand(
		newTestActor(t, actor.RoleAdmin), newTestPartnerCode(t, "GLD"), "Golden Hands")
	require.NoError(t, err)

	var registered *craftsman.Craftsman
	repo := new(MockCraftsmanRepository)
	uow := new(MockCraftsmanUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CraftsmanRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(entry *craftsman.Craftsman) bool {
			registered = entry
			return true
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCraftsmanUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterCraftsmanCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, registered)
	assert.Equal(t, "GLD", registered.Code().String())
	assert.Equal(t, "Golden Hands", registered.BusinessName())
	assert.Equal(t, actor.RoleCraftsman, registered.Role())
	assert.NoError(t, registered.ID().Validate())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterCraftsmanCommandHandler_Handle_SuperAdminMayRegister(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterCraftsmanCommand(
		newTestActor(t, actor.RoleSuperAdmin), newTestPartnerCode(t, "SLV"), "Silver Line")
	require.NoError(t, err)

	repo := new(MockCraftsmanRepository)
	uow := new(MockCraftsmanUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CraftsmanRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*craftsman.Craftsman")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCraftsmanUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterCraftsmanCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterCraftsmanCommandHandler_Handle_ForbiddenRole(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterCraftsmanCommand(
		newTestActor(t, actor.RoleKeyUser), newTestPartnerCode(t, "GLD"), "Golden Hands")
	require.NoError(t, err)

	factory := new(MockCraftsmanUoWFactory)
	h := commands.NewRegisterCraftsmanCommandHandler(factory)

	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertExpectations(t)
}

func TestRegisterCraftsmanCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.RegisterCraftsmanCommand

	factory := new(MockCraftsmanUoWFactory)
	h := commands.NewRegisterCraftsmanCommandHandler(factory)

	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRegisterCraftsmanCommandIsNotConstructed)
	factory.AssertExpectations(t)
}

func TestRegisterCraftsmanCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterCraftsmanCommand(
		newTestActor(t, actor.RoleAdmin), newTestPartnerCode(t, "GLD"), "Golden Hands")
	require.NoError(t, err)

	addError := errs.NewValueIsInvalidError("duplicate entry")
	repo := new(MockCraftsmanRepository)
	uow := new(MockCraftsmanUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CraftsmanRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*craftsman.Craftsman")).Return(addError).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCraftsmanUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterCraftsmanCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

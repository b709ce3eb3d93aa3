package commands_test

import (
	"testing"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newLegacyOrder builds an order placed by the given creator without a
// partner code, the state backfill exists to repair.
func newLegacyOrder(t *testing.T, orderNo string, createdBy kernel.UUID) *order.Order {
	t.Helper()

	orderDate := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	legacy, err := order.NewOrder(
		kernel.NewUUID(), newTestOrderNo(t, orderNo), newTestDetails(t), orderDate, nil, createdBy, nil)
	require.NoError(t, err)

	return legacy
}

func TestBackfillPartnerCodeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	creator := kernel.NewUUID()
	first := newLegacyOrder(t, "050", creator)
	second := newLegacyOrder(t, "051", creator)
	code := newTestPartnerCode(t, "GLD")
	cmd, err := commands.NewBackfillPartnerCodeCommand(creator, code)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllByCreatorWithoutPartnerCode", mock.Anything, creator).
			Return([]*order.Order{first, second}, nil).Once(),
		repo.On("Update", mock.Anything, first).Return(nil).Once(),
		repo.On("Update", mock.Anything, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBackfillPartnerCodeCommandHandler(factory)
	count, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.NotNil(t, first.PartnerCode())
	assert.True(t, first.PartnerCode().IsEqual(code))
	require.NotNil(t, second.PartnerCode())
	assert.True(t, second.PartnerCode().IsEqual(code))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestBackfillPartnerCodeCommandHandler_Handle_NoLegacyOrders(t *testing.T) {
	ctx := t.Context()
	creator := kernel.NewUUID()
	cmd, err := commands.NewBackfillPartnerCodeCommand(creator, newTestPartnerCode(t, "GLD"))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllByCreatorWithoutPartnerCode", mock.Anything, creator).
			Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBackfillPartnerCodeCommandHandler(factory)
	count, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestBackfillPartnerCodeCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.BackfillPartnerCodeCommand

	factory := new(MockOrderUoWFactory)
	h := commands.NewBackfillPartnerCodeCommandHandler(factory)

	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrBackfillPartnerCodeCommandIsNotConstructed)
	factory.AssertExpectations(t)
}

func TestBackfillPartnerCodeCommandHandler_Handle_CodeAlreadySet(t *testing.T) {
	ctx := t.Context()
	creator := kernel.NewUUID()
	code := newTestPartnerCode(t, "GLD")
	carrying := newLegacyOrder(t, "052", creator)
	require.NoError(t, carrying.BackfillPartnerCode(newTestPartnerCode(t, "SLV")))

	cmd, err := commands.NewBackfillPartnerCodeCommand(creator, code)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllByCreatorWithoutPartnerCode", mock.Anything, creator).
			Return([]*order.Order{carrying}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBackfillPartnerCodeCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrPartnerCodeAlreadySet)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

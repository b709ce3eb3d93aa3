package commands_test

import (
	"testing"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newApprovedOrder builds an order approved by a key user, awaiting admin
// verification.
func newApprovedOrder(t *testing.T, orderNo string) *order.Order {
	t.Helper()

	approved := newPendingOrder(t, orderNo)
	at := time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)
	require.NoError(t, approved.Approve(kernel.NewUUID(), "", at))

	return approved
}

func TestVerifyOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	approved := newApprovedOrder(t, "014")
	cmd, err := commands.NewVerifyOrderCommand(approved.OrderNo(), newTestActor(t, actor.RoleAdmin), "materials checked")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByNumber", mock.Anything, approved.OrderNo()).Return(approved, nil).Once(),
		repo.On("Update", mock.Anything, approved).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifyOrderCommandHandler(factory)
	status, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Verified, status)
	require.NotNil(t, approved.Stamps().Verification)
	assert.Equal(t, "materials checked", approved.Stamps().Verification.Notes())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestVerifyOrderCommandHandler_Handle_ForbiddenRole(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewVerifyOrderCommand(newTestOrderNo(t, "014"), newTestActor(t, actor.RoleKeyUser), "")
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewVerifyOrderCommandHandler(factory)

	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertExpectations(t)
}

func TestVerifyOrderCommandHandler_Handle_WrongState(t *testing.T) {
	ctx := t.Context()
	pending := newPendingOrder(t, "015") // not yet approved
	cmd, err := commands.NewVerifyOrderCommand(pending.OrderNo(), newTestActor(t, actor.RoleAdmin), "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByNumber", mock.Anything, pending.OrderNo()).Return(pending, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifyOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Pending, pending.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

package services

import (
	"testing"

	"canteen-backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPendingOrder(t *testing.T, svc *OrderService, menuItemID uint) *entity.Order {
	t.Helper()
	order, err := svc.Create(&CreateOrderReq{
		Items: []OrderItemIn{{MenuItemID: menuItemID, Quantity: 1}},
	})
	require.NoError(t, err)
	return order
}

func TestUpdateStatus_FullLifecycle(t *testing.T) {
	svc, db, notifier := newOrderService(t)
	coffee := seedItem(t, db, "Coffee", 3, true, 3)
	order := createPendingOrder(t, svc, coffee.ID)

	for _, next := range []string{entity.StatusInProgress, entity.StatusReady, entity.StatusCompleted} {
		updated, err := svc.UpdateStatus(order.Code, next)
		require.NoError(t, err)
		assert.Equal(t, next, updated.Status)
	}

	fetched, err := svc.Get(order.Code)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, fetched.Status)

	require.Len(t, notifier.updated, 3)
	assert.Equal(t, statusEvent{code: order.Code, status: entity.StatusInProgress}, notifier.updated[0])
	assert.Equal(t, statusEvent{code: order.Code, status: entity.StatusCompleted}, notifier.updated[2])
}

func TestUpdateStatus_UnrecognizedValue(t *testing.T) {
	svc, db, notifier := newOrderService(t)
	coffee := seedItem(t, db, "Coffee", 3, true, 3)
	order := createPendingOrder(t, svc, coffee.ID)

	_, err := svc.UpdateStatus(order.Code, "Cooked")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	fetched, getErr := svc.Get(order.Code)
	require.NoError(t, getErr)
	assert.Equal(t, entity.StatusPending, fetched.Status)
	assert.Empty(t, notifier.updated)
}

func TestUpdateStatus_UnknownOrder(t *testing.T) {
	svc, _, _ := newOrderService(t)

	_, err := svc.UpdateStatus("CN000000", entity.StatusReady)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestUpdateStatus_NoSkippingStates(t *testing.T) {
	svc, db, _ := newOrderService(t)
	coffee := seedItem(t, db, "Coffee", 3, true, 3)
	order := createPendingOrder(t, svc, coffee.ID)

	_, err := svc.UpdateStatus(order.Code, entity.StatusReady)
	assert.ErrorIs(t, err, ErrIllegalTransition)

	fetched, getErr := svc.Get(order.Code)
	require.NoError(t, getErr)
	assert.Equal(t, entity.StatusPending, fetched.Status)
}

func TestUpdateStatus_CancelFromAnyNonTerminal(t *testing.T) {
	svc, db, _ := newOrderService(t)
	coffee := seedItem(t, db, "Coffee", 3, true, 3)

	for _, from := range []string{entity.StatusPending, entity.StatusInProgress, entity.StatusReady} {
		order := createPendingOrder(t, svc, coffee.ID)

		// walk the order into the source state first
		switch from {
		case entity.StatusInProgress:
			_, err := svc.UpdateStatus(order.Code, entity.StatusInProgress)
			require.NoError(t, err)
		case entity.StatusReady:
			_, err := svc.UpdateStatus(order.Code, entity.StatusInProgress)
			require.NoError(t, err)
			_, err = svc.UpdateStatus(order.Code, entity.StatusReady)
			require.NoError(t, err)
		}

		updated, err := svc.UpdateStatus(order.Code, entity.StatusCancelled)
		require.NoError(t, err, "cancel from %s", from)
		assert.Equal(t, entity.StatusCancelled, updated.Status)
	}
}

func TestUpdateStatus_TerminalStatesAreFinal(t *testing.T) {
	svc, db, _ := newOrderService(t)
	coffee := seedItem(t, db, "Coffee", 3, true, 3)

	completed := createPendingOrder(t, svc, coffee.ID)
	for _, next := range []string{entity.StatusInProgress, entity.StatusReady, entity.StatusCompleted} {
		_, err := svc.UpdateStatus(completed.Code, next)
		require.NoError(t, err)
	}
	cancelled := createPendingOrder(t, svc, coffee.ID)
	_, err := svc.UpdateStatus(cancelled.Code, entity.StatusCancelled)
	require.NoError(t, err)

	for _, code := range []string{completed.Code, cancelled.Code} {
		for _, next := range []string{entity.StatusPending, entity.StatusInProgress, entity.StatusReady, entity.StatusCompleted, entity.StatusCancelled} {
			_, err := svc.UpdateStatus(code, next)
			assert.ErrorIs(t, err, ErrIllegalTransition, "%s should reject %s", code, next)
		}
	}
}

func TestUpdateStatus_CaseInsensitiveCode(t *testing.T) {
	svc, db, _ := newOrderService(t)
	coffee := seedItem(t, db, "Coffee", 3, true, 3)
	order := createPendingOrder(t, svc, coffee.ID)

	updated, err := svc.UpdateStatus("cn"+order.Code[2:], entity.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInProgress, updated.Status)
}

func TestTransitionTable(t *testing.T) {
	assert.True(t, entity.CanTransition(entity.StatusPending, entity.StatusInProgress))
	assert.True(t, entity.CanTransition(entity.StatusInProgress, entity.StatusReady))
	assert.True(t, entity.CanTransition(entity.StatusReady, entity.StatusCompleted))
	assert.True(t, entity.CanTransition(entity.StatusPending, entity.StatusCancelled))

	assert.False(t, entity.CanTransition(entity.StatusPending, entity.StatusCompleted))
	assert.False(t, entity.CanTransition(entity.StatusCompleted, entity.StatusCancelled))
	assert.False(t, entity.CanTransition(entity.StatusCancelled, entity.StatusPending))
	assert.False(t, entity.CanTransition(entity.StatusReady, entity.StatusPending))

	assert.True(t, entity.ValidStatus(entity.StatusInProgress))
	assert.False(t, entity.ValidStatus("Cooked"))
}

package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderStatusNext(t *testing.T) {
	next, ok := OrderStatusNotPaid.Next()
	require.True(t, ok)
	require.Equal(t, OrderStatusPaid, next)

	next, ok = OrderStatusPaid.Next()
	require.True(t, ok)
	require.Equal(t, OrderStatusCompleted, next)

	next, ok = OrderStatusCompleted.Next()
	require.True(t, ok)
	require.Equal(t, OrderStatusRefunded, next)

	// 终态不能再推进
	_, ok = OrderStatusRefunded.Next()
	require.False(t, ok)
}

func TestOrderStatusCanAdvance(t *testing.T) {
	require.True(t, OrderStatusNotPaid.CanAdvance())
	require.True(t, OrderStatusPaid.CanAdvance())
	require.True(t, OrderStatusCompleted.CanAdvance())
	require.False(t, OrderStatusRefunded.CanAdvance())
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusNotPaid, OrderStatusPaid, OrderStatusCompleted, OrderStatusRefunded} {
		require.True(t, s.Valid())
	}
	require.False(t, OrderStatus(0).Valid())
	require.False(t, OrderStatus(15).Valid())
	require.False(t, OrderStatus(50).Valid())
}

package slot

import (
	"slices"
	"testing"

	_ "github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/item/inventory"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	i, err := Index(0, 0)
	require.NoError(t, err)
	require.Zero(t, i)

	i, err = Index(2, 4)
	require.NoError(t, err)
	require.Equal(t, 22, i)

	i, err = Slot{Row: 5, Column: 8}.Index()
	require.NoError(t, err)
	require.Equal(t, 53, i)
}

func TestIndex_Invalid(t *testing.T) {
	_, err := Index(-1, 0)
	require.ErrorIs(t, err, ErrNegativeRow)

	_, err = Index(0, 9)
	require.ErrorIs(t, err, ErrColumnRange)

	_, err = Index(0, -1)
	require.ErrorIs(t, err, ErrColumnRange)
}

func TestIndices(t *testing.T) {
	got, err := Indices(Slot{1, 0}, Slot{0, 1}, Slot{0, 0})
	require.NoError(t, err)
	require.Equal(t, []int{9, 1, 0}, got)

	_, err = Indices(Slot{0, 0}, Slot{0, 12})
	require.ErrorIs(t, err, ErrColumnRange)
}

func TestFromIndex(t *testing.T) {
	for i := range 54 {
		s := FromIndex(i)
		back, err := s.Index()
		require.NoError(t, err)
		require.Equal(t, i, back)
	}
	require.Equal(t, Slot{Row: 2, Column: 4}, FromIndex(22))
}

func TestExcept(t *testing.T) {
	got := slices.Collect(Except(slices.Values([]int{0, 1, 2, 3, 1}), 1, 3))
	require.Equal(t, []int{0, 2}, got)

	border := slices.Collect(Except(slices.Values(Row(0)), Slot{0, 4}))
	require.Len(t, border, RowSize-1)
	require.NotContains(t, border, Slot{0, 4})
}

func TestInventory(t *testing.T) {
	inv := inventory.New(27, nil)
	apple := item.NewStack(item.Apple{}, 3)

	require.NoError(t, Set(inv, Slot{1, 2}, apple))
	got, err := Get(inv, Slot{1, 2})
	require.NoError(t, err)
	require.Equal(t, 3, got.Count())

	_, err = Get(inv, Slot{5, 0})
	require.Error(t, err)

	require.NoError(t, Fill(inv, item.NewStack(item.Stick{}, 1), Slot{0, 0}, Slot{0, 1}))
	got, err = Get(inv, Slot{0, 1})
	require.NoError(t, err)
	require.False(t, got.Empty())

	require.NoError(t, Fill(inv, item.NewStack(item.Stick{}, 1)))
	got, err = Get(inv, Slot{1, 2})
	require.NoError(t, err)
	require.True(t, got.Comparable(apple))
}

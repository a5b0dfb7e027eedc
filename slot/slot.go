// Package slot converts between chest slot positions and inventory indices.
package slot

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/item/inventory"
)

// RowSize is the number of slots in a chest row.
const RowSize = 9

var (
	// ErrNegativeRow is returned for a row below zero.
	ErrNegativeRow = errors.New("slot: row must not be negative")
	// ErrColumnRange is returned for a column outside 0 to RowSize-1.
	ErrColumnRange = fmt.Errorf("slot: column must be >= 0 and < %d", RowSize)
)

// Slot is a position in a chest inventory.
type Slot struct {
	Row, Column int
}

// Index returns the inventory index of the slot.
func (s Slot) Index() (int, error) {
	return Index(s.Row, s.Column)
}

// String returns the slot as (row, column).
func (s Slot) String() string {
	return fmt.Sprintf("(%d, %d)", s.Row, s.Column)
}

// Index converts a row and column to an inventory index.
func Index(row, column int) (int, error) {
	if row < 0 {
		return 0, fmt.Errorf("%w: got %d", ErrNegativeRow, row)
	}
	if column < 0 || column >= RowSize {
		return 0, fmt.Errorf("%w: got %d", ErrColumnRange, column)
	}
	return row*RowSize + column, nil
}

// Indices converts slots to inventory indices, keeping their order.
func Indices(slots ...Slot) ([]int, error) {
	out := make([]int, 0, len(slots))
	for _, s := range slots {
		i, err := s.Index()
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, nil
}

// FromIndex converts a non-negative inventory index to a slot.
func FromIndex(i int) Slot {
	return Slot{Row: i / RowSize, Column: i % RowSize}
}

// Row returns the slots of a row from left to right.
func Row(row int) []Slot {
	slots := make([]Slot, RowSize)
	for c := range slots {
		slots[c] = Slot{Row: row, Column: c}
	}
	return slots
}

// Except yields the elements of seq that are not among elems.
func Except[T comparable](seq iter.Seq[T], elems ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if slices.Contains(elems, v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Set puts stack in the slot of inv.
func Set(inv *inventory.Inventory, s Slot, stack item.Stack) error {
	i, err := s.Index()
	if err != nil {
		return err
	}
	if err := inv.SetItem(i, stack); err != nil {
		return fmt.Errorf("slot: set %v: %w", s, err)
	}
	return nil
}

// Get returns the stack in the slot of inv.
func Get(inv *inventory.Inventory, s Slot) (item.Stack, error) {
	i, err := s.Index()
	if err != nil {
		return item.Stack{}, err
	}
	stack, err := inv.Item(i)
	if err != nil {
		return item.Stack{}, fmt.Errorf("slot: get %v: %w", s, err)
	}
	return stack, nil
}

// Fill puts stack in every given slot of inv. With no slots, every empty
// slot of inv is filled.
func Fill(inv *inventory.Inventory, stack item.Stack, slots ...Slot) error {
	if len(slots) == 0 {
		for i := range inv.Size() {
			if it, err := inv.Item(i); err == nil && it.Empty() {
				if err := inv.SetItem(i, stack); err != nil {
					return fmt.Errorf("slot: fill %v: %w", FromIndex(i), err)
				}
			}
		}
		return nil
	}
	for _, s := range slots {
		if err := Set(inv, s, stack); err != nil {
			return err
		}
	}
	return nil
}

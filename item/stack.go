package item

import (
	"fmt"
	"strings"

	dfitem "github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/world"
)

// Option edits a stack.
type Option func(s dfitem.Stack) (dfitem.Stack, error)

// New creates a stack of one it and applies opts in order.
func New(it world.Item, opts ...Option) (dfitem.Stack, error) {
	return Edit(dfitem.NewStack(it, 1), opts...)
}

// Edit returns a copy of s with opts applied in order. The first failing
// option stops the edit.
func Edit(s dfitem.Stack, opts ...Option) (dfitem.Stack, error) {
	for _, opt := range opts {
		var err error
		if s, err = opt(s); err != nil {
			return s, fmt.Errorf("item: %w", err)
		}
	}
	return s, nil
}

// Count sets the stack size.
func Count(n int) Option {
	return func(s dfitem.Stack) (dfitem.Stack, error) {
		if n < 0 {
			return s, fmt.Errorf("negative count %d", n)
		}
		return s.Grow(n - s.Count()), nil
	}
}

// Name sets the custom name.
func Name(name string) Option {
	return func(s dfitem.Stack) (dfitem.Stack, error) {
		return s.WithCustomName(name), nil
	}
}

// Lore sets the lore lines.
func Lore(lines ...string) Option {
	return func(s dfitem.Stack) (dfitem.Stack, error) {
		return s.WithLore(lines...), nil
	}
}

// StringLore sets the lore from a newline separated string.
func StringLore(lore string) Option {
	return func(s dfitem.Stack) (dfitem.Stack, error) {
		return WithStringLore(s, lore), nil
	}
}

// Value stores a custom value on the stack.
func Value(key string, val any) Option {
	return func(s dfitem.Stack) (dfitem.Stack, error) {
		return s.WithValue(key, val), nil
	}
}

// NBT stores every entry of c as a custom value.
func NBT(c Compound) Option {
	return func(s dfitem.Stack) (dfitem.Stack, error) {
		return WithNBT(s, c), nil
	}
}

// Damage damages the stack by d durability points.
func Damage(d int) Option {
	return func(s dfitem.Stack) (dfitem.Stack, error) {
		return s.Damage(d), nil
	}
}

// Enchant adds the enchantments configured by fn. Unless unsafe is set,
// levels above the maximum and enchantments the item does not accept are
// errors.
func Enchant(unsafe bool, fn func(n *EnchantmentNode)) Option {
	return func(s dfitem.Stack) (dfitem.Stack, error) {
		return EnchantStack(s, unsafe, fn)
	}
}

// StringLoreOf returns the lore of s joined by newlines.
func StringLoreOf(s dfitem.Stack) string {
	return strings.Join(s.Lore(), "\n")
}

// WithStringLore returns s with its lore set to the lines of lore. An empty
// string clears the lore.
func WithStringLore(s dfitem.Stack, lore string) dfitem.Stack {
	if lore == "" {
		return s.WithLore()
	}
	return s.WithLore(strings.Split(lore, "\n")...)
}

// DisplayName returns the custom name of s, if any.
func DisplayName(s dfitem.Stack) (string, bool) {
	name := s.CustomName()
	return name, name != ""
}

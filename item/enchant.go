package item

import (
	"errors"
	"fmt"

	dfitem "github.com/df-mc/dragonfly/server/item"
)

var (
	// ErrEnchantmentLevel is returned for a level outside 1 to the maximum
	// level of the enchantment.
	ErrEnchantmentLevel = errors.New("enchantment level out of range")
	// ErrEnchantmentIncompatible is returned for an enchantment the item
	// cannot hold.
	ErrEnchantmentIncompatible = errors.New("enchantment not applicable to item")
)

// EnchantmentContainer is an enchantment type with a level.
type EnchantmentContainer struct {
	Type  dfitem.EnchantmentType
	level int
}

// Level sets the level of the enchantment.
func (c *EnchantmentContainer) Level(n int) *EnchantmentContainer {
	c.level = n
	return c
}

// CurrentLevel returns the configured level.
func (c *EnchantmentContainer) CurrentLevel() int {
	return c.level
}

// EnchantmentNode collects enchantments to apply to a stack. Adding a type
// twice keeps the last container.
type EnchantmentNode struct {
	set []*EnchantmentContainer
}

// With adds t at level 1 and returns its container.
func (n *EnchantmentNode) With(t dfitem.EnchantmentType) *EnchantmentContainer {
	c := &EnchantmentContainer{Type: t, level: 1}
	for i, existing := range n.set {
		if existing.Type == t {
			n.set[i] = c
			return c
		}
	}
	n.set = append(n.set, c)
	return c
}

// WithAll adds every type and calls config for each container.
func (n *EnchantmentNode) WithAll(config func(c *EnchantmentContainer, t dfitem.EnchantmentType), types ...dfitem.EnchantmentType) {
	for _, t := range types {
		c := n.With(t)
		if config != nil {
			config(c, t)
		}
	}
}

// WithLevels adds every type of levels at its level.
func (n *EnchantmentNode) WithLevels(levels map[dfitem.EnchantmentType]int) {
	for t, lvl := range levels {
		n.With(t).Level(lvl)
	}
}

// Set returns the containers in the order they were added.
func (n *EnchantmentNode) Set() []*EnchantmentContainer {
	return n.set
}

// EnchantStack applies the enchantments configured by fn to s. Unless unsafe
// is set the whole node is validated before anything is applied.
func EnchantStack(s dfitem.Stack, unsafe bool, fn func(n *EnchantmentNode)) (dfitem.Stack, error) {
	n := &EnchantmentNode{}
	if fn != nil {
		fn(n)
	}

	enchants := make([]dfitem.Enchantment, 0, len(n.set))
	for _, c := range n.set {
		if !unsafe {
			if err := validate(s, c); err != nil {
				return s, err
			}
		}
		enchants = append(enchants, dfitem.NewEnchantment(c.Type, c.level))
	}
	return s.WithEnchantments(enchants...), nil
}

func validate(s dfitem.Stack, c *EnchantmentContainer) error {
	if c.level < 1 || c.level > c.Type.MaxLevel() {
		return fmt.Errorf("%w: %s level %d (max %d)", ErrEnchantmentLevel, c.Type.Name(), c.level, c.Type.MaxLevel())
	}
	switch s.Item().(type) {
	case dfitem.Book, dfitem.EnchantedBook:
		return nil
	}
	if !c.Type.CompatibleWithItem(s.Item()) {
		return fmt.Errorf("%w: %s", ErrEnchantmentIncompatible, c.Type.Name())
	}
	return nil
}

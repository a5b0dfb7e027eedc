// Package item builds and edits item stacks.
//
//	sword, err := item.New(dfitem.Sword{Tier: dfitem.ToolTierDiamond},
//	    item.Name("Excalibur"),
//	    item.StringLore("Pulled from the stone.\nNever dulls."),
//	    item.Enchant(false, func(n *item.EnchantmentNode) {
//	        n.With(enchantment.Sharpness).Level(5)
//	        n.With(enchantment.Unbreaking).Level(3)
//	    }),
//	)
package item

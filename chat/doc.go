// Package chat builds formatted chat messages and sends them to players.
//
//	chat.SendBuilt(p, "Welcome ", func(b *chat.Builder) {
//	    b.Colour(chat.Gold).Append(p.Name()).Bold(true).Append("!").Reset()
//	})
package chat

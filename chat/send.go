package chat

import (
	"fmt"
	"io"

	dfchat "github.com/df-mc/dragonfly/server/player/chat"
)

// Send sends components to sub as a single message. Nothing is sent when no
// components are passed.
func Send(sub dfchat.Subscriber, components ...*Component) {
	if sub == nil || len(components) == 0 {
		return
	}
	sub.Message(Join(components...))
}

// SendText sends content formatted by opts to sub.
func SendText(sub dfchat.Subscriber, content string, opts ...Option) {
	Send(sub, Text(content, opts...))
}

// SendBuilt builds components from content and fn and sends them to sub.
func SendBuilt(sub dfchat.Subscriber, content string, fn func(b *Builder)) {
	Send(sub, Build(content, fn)...)
}

// Broadcast writes components to w as one message, typically a *chat.Chat
// such as chat.Global.
func Broadcast(w io.Writer, components ...*Component) error {
	if len(components) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, Join(components...)); err != nil {
		return fmt.Errorf("chat: broadcast: %w", err)
	}
	return nil
}

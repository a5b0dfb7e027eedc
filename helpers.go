package dfx

import (
	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/player/form"
)

// PlayerFromSource extracts the player from a command source.
// Returns nil if the source is not a player.
//
// Usage:
//
//	func (c MyCommand) Run(src cmd.Source, out *cmd.Output, tx *world.Tx) {
//	    p := dfx.PlayerFromSource(src)
//	    if p == nil {
//	        out.Error("Player-only command")
//	        return
//	    }
//	}
func PlayerFromSource(src cmd.Source) *player.Player {
	p, _ := src.(*player.Player)
	return p
}

// PlayerFromSubmitter extracts the player from a form submitter.
// Returns nil if the submitter is not a player.
func PlayerFromSubmitter(sub form.Submitter) *player.Player {
	p, _ := sub.(*player.Player)
	return p
}

// PlayerFromUser extracts the player from an item user.
// Returns nil if the user is not a player.
func PlayerFromUser(user item.User) *player.Player {
	p, _ := user.(*player.Player)
	return p
}

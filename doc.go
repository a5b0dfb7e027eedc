// Package dfx provides convenience helpers for Dragonfly servers.
//
// dfx is a thin layer on top of Dragonfly that provides:
//   - Subject interaction registries (package interaction)
//   - A tick scheduler with sync and async tasks (package scheduler)
//   - Chat components and builders (package chat)
//   - Item stack builders, enchantments and NBT (package item)
//   - Chest slot arithmetic (package slot)
//
// # Quick Start
//
// Create a Host in your server setup:
//
//	conf, err := dfx.LoadConfig("dfx.toml")
//	if err != nil {
//	    panic(err)
//	}
//	host := dfx.NewBuilder().
//	    Config(conf).
//	    Roster(srv).
//	    Broadcaster(chat.Global).
//	    Build(scheduler.WorldExecutor(srv.World()))
//	go host.Start(ctx)
//
// # Players
//
//	dfx.Heal(p)
//	dfx.Feed(p)
//	p.AddEffect(dfx.Effect(effect.Speed, dfx.Level(2), dfx.Duration(time.Minute)))
//	host.HideIf(tx, p, func(other *player.Player) bool { return other.Name() != "admin" })
package dfx

// Version is the dfx version.
const Version = "1.0.0"

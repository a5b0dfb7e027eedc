// Package interaction maps caller-defined subjects to callbacks and
// re-dispatches Dragonfly player events to the callbacks of the subjects
// each event concerns.
//
// # Registries
//
// A Registry is keyed by any comparable subject. An Extractor decides which
// subjects an event is about:
//
//	doors := interaction.New[string, *OpenEvent](interaction.ExtractorFunc[string, *OpenEvent](
//	    func(e *OpenEvent) ([]string, error) { return []string{e.Door}, nil },
//	))
//	sub := doors.Subscribe("vault", func(e *OpenEvent) { ... })
//	defer sub.Close()
//
// A WeakRegistry holds pointer subjects weakly, so subscriptions vanish with
// the subject they were made for.
//
// # Dragonfly
//
// Handler implements player.Handler and forwards events to listeners.
// BlockListener, PlayerListener and EntityListener are registries keyed by
// block, player UUID and entity handle:
//
//	chests := interaction.NewBlockListener()
//	chests.Subscribe(interaction.At(w, pos), interaction.On(func(e *interaction.EventItemUseOnBlock) {
//	    e.Player().Message("This chest is locked.")
//	    e.Cancel()
//	}))
//
//	h := interaction.NewHandler([]interaction.Listener{chests})
//	p.Handle(h)
package interaction

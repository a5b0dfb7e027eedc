// Package scheduler runs tasks on a tick clock.
//
// Sync tasks run inside a world transaction through an Executor. Async tasks
// run on a worker pool and never receive a transaction.
//
//	s := scheduler.New(scheduler.WorldExecutor(w))
//	go s.Start(ctx)
//
//	s.Delay(scheduler.Seconds(3), func(t *scheduler.Task) {
//	    for e := range t.Tx().Entities() { ... }
//	})
//	s.Schedule(0, scheduler.TicksPerSecond, func(t *scheduler.Task) {
//	    saveStats()
//	}, scheduler.Async())
package scheduler

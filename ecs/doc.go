// Package ecs bridges porkbelly gameplay events into a [Donburi] world.
//
// [NewDonburiSink] returns a porkbelly.EventSink that publishes every event
// to [GameEventType]. Subscribe to it from your ECS systems and drain the
// queue once per frame:
//
//	world := donburi.NewWorld()
//	game := porkbelly.NewWorld(porkbelly.Options{Sink: ecs.NewDonburiSink(world), ...})
//	ecs.GameEventType.Subscribe(world, onGameEvent)
//	// each frame, after game.Update:
//	events.ProcessAllEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

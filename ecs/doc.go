// Package ecs connects raffle widgets to a [Donburi] world.
//
// [NewDonburiSink] publishes every widget lifecycle event as a typed
// Donburi event and stores each revealed result as an entity carrying a
// [DrawRecord] component. Subscribe to [EventType] in your ECS systems to
// react to draws, and call [Results] to list past winners.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	widget.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

// Package raffle is an animated raffle widget for [Ebitengine].
//
// A [Widget] picks a random number in a configured range. It rolls through
// candidates for a few seconds, reveals the winner, then plays a particle
// celebration (fireworks, confetti, stars or balloons) until a key press
// dismisses it.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	w := raffle.NewWidget(raffle.ParseAttributes(map[string]string{
//		raffle.AttrEndingNumber:  "500",
//		raffle.AttrAnimationType: "confetti",
//	}))
//	raffle.Run(w, raffle.RunConfig{Title: "Raffle", Width: 800, Height: 600})
//
// A [Widget] is itself an [ebiten.Game], so it can also be driven by a host
// game loop or embedded in one.
//
// # Configuration
//
// [ParseAttributes] reads the same data-* keys a page would carry on the
// widget's markup. Missing or invalid values fall back to defaults, so it
// never fails. [LoadConfigFile] reads the same settings from YAML.
//
// # Time
//
// The widget never spawns goroutines or reads the wall clock. Rolling ticks
// and celebration frames are callbacks on a [Scheduler] that only runs
// inside [Widget.Advance], which Update calls once per tick. Tests can
// advance time explicitly.
//
// # Drawing
//
// Celebrations paint onto a [Canvas]. [ImageCanvas] triangulates shapes for
// Ebitengine's DrawTriangles; package term paints into a terminal with
// tcell. Any type implementing the four Canvas methods works.
//
// # Events
//
// [Widget.SetEventSink] receives lifecycle [Event] values. Package ecs
// forwards them into a donburi world.
//
// [Ebitengine]: https://ebitengine.org
package raffle

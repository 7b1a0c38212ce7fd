// Package dyngauge renders battle gauge overlays for 2D RPG hosts built
// on [Ebitengine].
//
// Dyngauge slices gauge frames, bar fills, and digit glyphs out of the
// host's RPG Maker 2003 style system sheet and composites a small status
// canvas above every battle participant: health, mana, and turn gauges,
// numeric counters, and an optional condition count. The host stays in
// charge of the battle; dyngauge only watches it through a narrow
// interface and draws on top.
//
// # Quick start
//
// Implement [Host] (and [Battler] for each participant), create a
// [Plugin], and forward the host's lifecycle events:
//
//	plugin := dyngauge.NewPlugin(host)
//	plugin.ConfigSource = dyngauge.IniConfigSource("DynRPG.ini")
//	plugin.OnStartup("dyngauge")
//
//	// every frame:
//	plugin.OnFrame(currentScene)
//
//	// after drawing each battler:
//	plugin.OnBattlerDrawn(battler, isMonster, slot)
//
//	// in the draw phase, after the battler sprites:
//	plugin.Draw(screen)
//
//	// at shutdown:
//	plugin.OnExit()
//
// # Lifecycle
//
// [Plugin.OnFrame] watches the host's scene tag and reacts to the two
// battle transitions: entering a battle binds a [BattleDisplay] to every
// active battler, leaving one releases nothing (canvases are reused
// between battles, the tiles live until [Plugin.OnExit]).
// [Plugin.OnBattlerDrawn] re-reads the battler's stats and recomposites
// its canvas, so the overlay is at most one draw behind the host.
//
// # Configuration
//
// Options follow the DynRPG.ini convention: a section named after the
// plugin with boolean keys per gauge and counter, canvas geometry, and a
// vertical offset. [ParseOptions] treats missing or malformed values as
// their defaults, so an absent file simply means everything except the
// turn and condition counters is on. See [Options].
//
// [Ebitengine]: https://ebitengine.org
package dyngauge

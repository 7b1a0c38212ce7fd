package dyngauge

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Plugin is the context object tying the whole overlay together: the host
// reference, the parsed options, the shared tile set, the display
// registry, and the battle lifecycle state. Create one per host with
// NewPlugin and wire the four hooks into the engine's corresponding
// events; Ebitengine hosts additionally call Draw from their draw phase.
//
// A Plugin is driven synchronously from the host's frame loop and must
// not be shared across goroutines.
type Plugin struct {
	host     Host
	opts     Options
	tiles    *TileSet
	registry *Registry
	inBattle bool
	shutdown bool

	// ConfigSource supplies the opaque configuration map OnStartup
	// parses. Leave nil to run on defaults, or use IniConfigSource for
	// hosts following the DynRPG.ini convention.
	ConfigSource func(pluginName string) map[string]string
}

// NewPlugin creates a plugin bound to the given host, running on
// DefaultOptions until OnStartup parses the host configuration. The
// display pools are allocated immediately; tiles are sliced lazily on the
// first battle start.
func NewPlugin(host Host) *Plugin {
	p := &Plugin{
		host: host,
		opts: DefaultOptions(),
	}
	p.tiles = NewTileSet(host)
	p.registry = NewRegistry(p.tiles, p.opts)
	return p
}

// Options returns the plugin's current configuration.
func (p *Plugin) Options() Options {
	return p.opts
}

// Registry exposes the display pools, mainly for hosts that present the
// overlays themselves instead of calling Draw.
func (p *Plugin) Registry() *Registry {
	return p.registry
}

// SetDebugMode toggles the plugin's stderr logging (battle transitions,
// bind counts, tile-slicing warnings). OnStartup overrides the flag only
// when the configuration map carries a Debug entry; otherwise the value
// set here survives a restart.
func (p *Plugin) SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// globalDebug mirrors the most recently set debug flag so that helpers
// without a Plugin pointer (tile slicing, config sources) can check it
// cheaply. Only meaningful with a single Plugin, which is how the host
// engine runs it.
var globalDebug bool

// OnStartup is the startup hook. It receives the plugin's identifier,
// obtains the configuration map from ConfigSource (if any), and parses
// it. The display pools are rebuilt when the parsed options change
// anything baked in at pool construction; otherwise the existing pools
// are kept and just unbound. The battle lifecycle state resets to
// out-of-battle either way. It never fails; a missing or unreadable
// configuration means defaults.
func (p *Plugin) OnStartup(pluginName string) {
	p.inBattle = false
	var cfg map[string]string
	if p.ConfigSource != nil {
		cfg = p.ConfigSource(pluginName)
	}
	old := p.opts
	p.opts = ParseOptions(cfg)
	if debugConfigured(cfg) {
		globalDebug = p.opts.Debug
	}
	if poolConfigChanged(old, p.opts) {
		p.registry.Dispose()
		p.registry = NewRegistry(p.tiles, p.opts)
	} else {
		p.registry.Reset()
	}
	if globalDebug {
		log.Printf("dyngauge: started as %q (canvas %dx%d)", pluginName, p.opts.DisplayWidth, p.opts.DisplayHeight)
	}
}

// OnFrame is the per-frame hook. It compares the host's scene tag against
// the remembered battle state and reacts only to the two transitions:
// entering a battle binds a display to every active battler, leaving one
// just flips the state (stale bindings persist harmlessly until the next
// battle start).
func (p *Plugin) OnFrame(scene Scene) {
	if p.inBattle {
		if scene != SceneBattle {
			p.inBattle = false
			if globalDebug {
				log.Printf("dyngauge: battle ended")
			}
		}
		return
	}
	if scene != SceneBattle {
		return
	}
	p.inBattle = true
	heroes, monsters := p.bindActive()
	if globalDebug {
		log.Printf("dyngauge: battle started, bound %d heroes and %d monsters", heroes, monsters)
	}
}

// bindActive binds every registry slot whose host battler is present and
// active (non-zero database id). Inactive slots keep whatever they held
// before. Both sides are bound the same way; which rows actually render
// is the per-side Options' concern.
func (p *Plugin) bindActive() (heroes, monsters int) {
	for i := 0; i < MaxMonsters; i++ {
		if b := p.host.Monster(i); active(b) {
			p.registry.Monster(i).Bind(b)
			monsters++
		}
	}
	for i := 0; i < MaxHeroes; i++ {
		if b := p.host.Hero(i); active(b) {
			p.registry.Hero(i).Bind(b)
			heroes++
		}
	}
	return heroes, monsters
}

func active(b Battler) bool {
	return b != nil && b.DatabaseID() != 0
}

// OnBattlerDrawn is the per-draw hook, called by the host right after it
// draws a battler. It refreshes the display in the matching slot so the
// overlay tracks the battler's newest stats. A slot that is still Unbound
// is bound first when the drawn battler is active, which also covers
// battlers that join mid-battle. Out-of-range slots are ignored. Always
// reports the event handled.
func (p *Plugin) OnBattlerDrawn(battler Battler, isMonster bool, slot int) bool {
	var d *BattleDisplay
	if isMonster {
		d = p.registry.Monster(slot)
	} else {
		d = p.registry.Hero(slot)
	}
	if d == nil {
		return true
	}
	if !d.Bound() && active(battler) {
		d.Bind(battler)
	}
	d.Refresh()
	return true
}

// Draw blits every bound display's canvas onto the screen, bottom-center
// anchored above its battler's reported position, lifted by the
// configured vertical offset. Outside a battle it draws nothing. Hosts
// call it from their draw phase after the battler sprites.
func (p *Plugin) Draw(screen *ebiten.Image) {
	if !p.inBattle || screen == nil {
		return
	}
	for i := 0; i < MaxMonsters; i++ {
		p.drawSlot(screen, p.registry.Monster(i))
	}
	for i := 0; i < MaxHeroes; i++ {
		p.drawSlot(screen, p.registry.Hero(i))
	}
}

func (p *Plugin) drawSlot(screen *ebiten.Image, d *BattleDisplay) {
	if d == nil || d.battler == nil {
		return
	}
	x, y := overlayOrigin(d.battler, d.canvas.Width(), d.canvas.Height(), p.opts.VerticalOffset)
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(d.canvas.Image(), &op)
}

// overlayOrigin computes the top-left screen position for a display's
// canvas: bottom-center anchored above the battler's sprite anchor,
// lifted by the vertical offset.
func overlayOrigin(b Battler, canvasW, canvasH, offset int) (x, y int) {
	return b.ScreenX() - canvasW/2, b.ScreenY() - canvasH - offset
}

// OnExit is the shutdown hook: it releases the shared tiles and every
// display canvas. Only the first call does anything; the plugin must not
// be used afterward.
func (p *Plugin) OnExit() {
	if p.shutdown {
		return
	}
	p.shutdown = true
	p.inBattle = false
	p.tiles.Release()
	p.registry.Dispose()
}

package dyngauge

import (
	"strconv"
	"strings"
)

// SideOptions selects which rows the compositor draws for one side of the
// battle (heroes or monsters).
type SideOptions struct {
	// Gauge rows: background artwork plus proportional bar fill.
	HealthGauge bool
	ManaGauge   bool
	ATBGauge    bool

	// Counter rows: the stat value as a right-aligned digit run.
	HealthCounter bool
	ManaCounter   bool
	ATBCounter    bool

	// ConditionCounter shows how many status conditions affect the
	// battler. Only drawn for battlers implementing ConditionReporter.
	ConditionCounter bool
}

// Options is the parsed form of the host-supplied configuration map. It
// controls which parts of the display are shown over heroes and monsters
// and the details of how they are shown.
type Options struct {
	Heroes   SideOptions
	Monsters SideOptions

	// DisplayWidth and DisplayHeight size every composite canvas. The
	// defaults are deliberately roomy; shrink them once a layout is
	// settled.
	DisplayWidth  int
	DisplayHeight int

	// VerticalOffset is the gap in pixels between a battler's sprite
	// anchor and the bottom of its overlay.
	VerticalOffset int

	// SmoothBars eases bar fills toward new values instead of snapping.
	SmoothBars bool

	// Debug enables the plugin's stderr logging.
	Debug bool
}

// DefaultOptions returns the configuration used when the host supplies no
// overrides: all three gauge rows, health and mana counters, no ATB
// counter, no condition counters, the provisional 80x320 canvas, a
// 16-pixel anchor gap, no smoothing.
func DefaultOptions() Options {
	side := SideOptions{
		HealthGauge:   true,
		ManaGauge:     true,
		ATBGauge:      true,
		HealthCounter: true,
		ManaCounter:   true,
	}
	return Options{
		Heroes:         side,
		Monsters:       side,
		DisplayWidth:   DisplayWidth,
		DisplayHeight:  DisplayHeight,
		VerticalOffset: 16,
	}
}

// ParseOptions builds Options from the opaque configuration map the host
// hands to OnStartup. Keys are matched case-insensitively; entries that
// fail to parse keep their defaults, matching the engine's lenient
// treatment of plugin configuration.
func ParseOptions(cfg map[string]string) Options {
	o := DefaultOptions()
	for k, v := range cfg {
		switch strings.ToLower(strings.TrimSpace(k)) {
		case "herohealthgauge":
			setBool(&o.Heroes.HealthGauge, v)
		case "heromanagauge":
			setBool(&o.Heroes.ManaGauge, v)
		case "heroatbgauge":
			setBool(&o.Heroes.ATBGauge, v)
		case "herohealthcounter":
			setBool(&o.Heroes.HealthCounter, v)
		case "heromanacounter":
			setBool(&o.Heroes.ManaCounter, v)
		case "heroatbcounter":
			setBool(&o.Heroes.ATBCounter, v)
		case "heroconditioncounter":
			setBool(&o.Heroes.ConditionCounter, v)
		case "monsterhealthgauge":
			setBool(&o.Monsters.HealthGauge, v)
		case "monstermanagauge":
			setBool(&o.Monsters.ManaGauge, v)
		case "monsteratbgauge":
			setBool(&o.Monsters.ATBGauge, v)
		case "monsterhealthcounter":
			setBool(&o.Monsters.HealthCounter, v)
		case "monstermanacounter":
			setBool(&o.Monsters.ManaCounter, v)
		case "monsteratbcounter":
			setBool(&o.Monsters.ATBCounter, v)
		case "monsterconditioncounter":
			setBool(&o.Monsters.ConditionCounter, v)
		case "displaywidth":
			setMinInt(&o.DisplayWidth, v, 1)
		case "displayheight":
			setMinInt(&o.DisplayHeight, v, 1)
		case "verticaloffset":
			setInt(&o.VerticalOffset, v)
		case "smoothbars":
			setBool(&o.SmoothBars, v)
		case "debug":
			setBool(&o.Debug, v)
		}
	}
	return o
}

// poolConfigChanged reports whether display pools built under a need
// rebuilding under b. Only fields baked in at pool construction count;
// VerticalOffset and Debug apply without a rebuild.
func poolConfigChanged(a, b Options) bool {
	a.VerticalOffset, b.VerticalOffset = 0, 0
	a.Debug, b.Debug = false, false
	return a != b
}

// debugConfigured reports whether the configuration map carries a
// parseable Debug entry. OnStartup only overrides SetDebugMode when the
// configuration actually says something.
func debugConfigured(cfg map[string]string) bool {
	for k, v := range cfg {
		if strings.EqualFold(strings.TrimSpace(k), "debug") {
			_, err := strconv.ParseBool(strings.TrimSpace(v))
			return err == nil
		}
	}
	return false
}

func setBool(dst *bool, v string) {
	if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
		*dst = b
	}
}

func setInt(dst *int, v string) {
	if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
		*dst = n
	}
}

func setMinInt(dst *int, v string, min int) {
	if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n >= min {
		*dst = n
	}
}

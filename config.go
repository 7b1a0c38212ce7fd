package dyngauge

import (
	"fmt"
	"log"

	"gopkg.in/ini.v1"
)

// LoadConfiguration reads an INI source and returns the key/value pairs
// of the section named after the plugin, the way RPG Maker hosts keep
// per-plugin settings in DynRPG.ini. The source is anything ini.Load
// accepts (a path, []byte, or io.Reader). A missing section is not an
// error; it yields an empty map, which ParseOptions turns into defaults.
func LoadConfiguration(source any, pluginName string) (map[string]string, error) {
	file, err := ini.Load(source)
	if err != nil {
		return nil, fmt.Errorf("dyngauge: load configuration: %w", err)
	}
	section, err := file.GetSection(pluginName)
	if err != nil {
		return map[string]string{}, nil
	}
	return section.KeysHash(), nil
}

// IniConfigSource adapts an INI source into a Plugin.ConfigSource. Load
// failures are logged in debug mode and fall back to defaults rather
// than aborting startup.
func IniConfigSource(source any) func(pluginName string) map[string]string {
	return func(pluginName string) map[string]string {
		cfg, err := LoadConfiguration(source, pluginName)
		if err != nil {
			if globalDebug {
				log.Printf("dyngauge: %v, using defaults", err)
			}
			return nil
		}
		return cfg
	}
}

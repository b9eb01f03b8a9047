package config

import "time"

// DefaultConfig returns the default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Durations: DurationsConfig{
			Work:  25 * time.Minute,
			Break: 5 * time.Minute,
		},
		Render: RenderConfig{
			WorkGlyph:   "🍅",
			BreakGlyph:  "☕",
			PausedGlyph: "⏸",
			Tick:        time.Second,
		},
		Socket: SocketConfig{
			Path: "",
		},
		Notify: NotifyConfig{
			Disabled: false,
			WorkDone: MessageConfig{
				Summary: "Work phase over",
				Body:    "Time for a break.",
			},
			BreakDone: MessageConfig{
				Summary: "Break over",
				Body:    "Back to work.",
			},
		},
	}
}

// MergeWithDefaults fills zero values in cfg with defaults, so partial
// config files keep working.
func MergeWithDefaults(cfg *Config) *Config {
	def := DefaultConfig()

	if cfg.Durations.Work == 0 {
		cfg.Durations.Work = def.Durations.Work
	}
	if cfg.Durations.Break == 0 {
		cfg.Durations.Break = def.Durations.Break
	}
	if cfg.Render.WorkGlyph == "" {
		cfg.Render.WorkGlyph = def.Render.WorkGlyph
	}
	if cfg.Render.BreakGlyph == "" {
		cfg.Render.BreakGlyph = def.Render.BreakGlyph
	}
	if cfg.Render.PausedGlyph == "" {
		cfg.Render.PausedGlyph = def.Render.PausedGlyph
	}
	if cfg.Render.Tick == 0 {
		cfg.Render.Tick = def.Render.Tick
	}
	if cfg.Notify.WorkDone.Summary == "" {
		cfg.Notify.WorkDone = def.Notify.WorkDone
	}
	if cfg.Notify.BreakDone.Summary == "" {
		cfg.Notify.BreakDone = def.Notify.BreakDone
	}

	return cfg
}

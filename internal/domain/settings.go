package domain

// RestTimerSettings controls how rest periods between sets are timed and
// announced.
type RestTimerSettings struct {
	DefaultRestTime  int  `yaml:"default_rest_time"` // seconds
	WarningTime      int  `yaml:"warning_time"`      // seconds remaining when the warning fires
	SoundEnabled     bool `yaml:"sound_enabled"`
	VibrationEnabled bool `yaml:"vibration_enabled"`
	SmartRest        bool `yaml:"smart_rest"`
	BackgroundMusic  bool `yaml:"background_music"`

	// CustomRestTimes maps exercise id to a rest duration in seconds.
	CustomRestTimes map[string]int `yaml:"custom_rest_times,omitempty"`
}

// DefaultRestTimerSettings returns the settings used when nothing is configured.
func DefaultRestTimerSettings() RestTimerSettings {
	return RestTimerSettings{
		DefaultRestTime:  90,
		WarningTime:      10,
		SoundEnabled:     true,
		VibrationEnabled: true,
		SmartRest:        false,
		BackgroundMusic:  false,
		CustomRestTimes:  map[string]int{},
	}
}

// Clone returns a copy whose CustomRestTimes map is not shared.
func (s RestTimerSettings) Clone() RestTimerSettings {
	out := s
	out.CustomRestTimes = make(map[string]int, len(s.CustomRestTimes))
	for k, v := range s.CustomRestTimes {
		out.CustomRestTimes[k] = v
	}
	return out
}

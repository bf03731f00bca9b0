package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundMenuNavigate
	SoundMenuSelect
	SoundMenuBack
	SoundMenuOpen
	SoundMenuClose
	SoundModalConfirm
	SoundModalCancel
	SoundTabChange
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// Tone describes a synthesized UI blip
type Tone struct {
	Frequency float64 // Hz at the start of the blip
	Slide     float64 // Hz added by the end of the blip
	Duration  float64 // seconds
	Volume    float64 // 0.0 - 1.0
}

// SoundConfig maps sound IDs to tones
type SoundConfig struct {
	Tones map[SoundID]Tone
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundMenuNavigate: {Frequency: 660, Duration: 0.04, Volume: 0.35},
			SoundMenuSelect:   {Frequency: 880, Slide: 220, Duration: 0.08, Volume: 0.45},
			SoundMenuBack:     {Frequency: 520, Slide: -160, Duration: 0.08, Volume: 0.4},
			SoundMenuOpen:     {Frequency: 440, Slide: 330, Duration: 0.15, Volume: 0.4},
			SoundMenuClose:    {Frequency: 770, Slide: -330, Duration: 0.15, Volume: 0.4},
			SoundModalConfirm: {Frequency: 990, Duration: 0.1, Volume: 0.45},
			SoundModalCancel:  {Frequency: 330, Duration: 0.1, Volume: 0.45},
			SoundTabChange:    {Frequency: 740, Slide: 60, Duration: 0.05, Volume: 0.35},
		},
	}
}

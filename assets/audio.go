package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	cfg "github.com/automoto/neutron/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader synthesizes the UI blips and caches them decoded
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // Decoded PCM per sound
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX decodes every configured tone so the first play does not lag.
func (l *AudioLoader) PreloadSFX() error {
	for id := range cfg.Sound.Tones {
		if _, err := l.decoded(id); err != nil {
			return err
		}
	}
	return nil
}

// LoadSFX returns a new player for a sound each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	pcm, err := l.decoded(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(pcm))
}

func (l *AudioLoader) decoded(id cfg.SoundID) ([]byte, error) {
	if pcm, ok := l.sfxCache[id]; ok {
		return pcm, nil
	}

	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return nil, fmt.Errorf("no tone for sound %d", id)
	}

	data := ToneWAV(tone, cfg.Audio.SampleRate)
	stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode tone %d: %w", id, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded tone %d: %w", id, err)
	}

	l.sfxCache[id] = pcm
	return pcm, nil
}

// ToneWAV renders a tone as a 16-bit mono WAV file. The frequency slides
// linearly over the duration and the amplitude decays to silence.
func ToneWAV(t cfg.Tone, sampleRate int) []byte {
	n := int(t.Duration * float64(sampleRate))
	samples := make([]int16, n)

	phase := 0.0
	for i := range samples {
		p := float64(i) / float64(max(n-1, 1))
		freq := t.Frequency + t.Slide*p
		phase += 2 * math.Pi * freq / float64(sampleRate)
		env := (1 - p) * (1 - p)
		samples[i] = int16(math.Sin(phase) * env * t.Volume * math.MaxInt16)
	}

	var buf bytes.Buffer
	dataLen := uint32(len(samples) * 2)
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, 36+dataLen)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*2))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(2))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(16))

	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, dataLen)
	_ = binary.Write(&buf, binary.LittleEndian, samples)
	return buf.Bytes()
}

package systems

import (
	"sync"

	"github.com/automoto/neutron/assets"
	"github.com/automoto/neutron/components"
	cfg "github.com/automoto/neutron/config"
	"github.com/automoto/neutron/logging"
	"github.com/automoto/neutron/navigation"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalPendingSFX   []cfg.SoundID
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX synthesizes and decodes every UI sound at startup to avoid
// lag on first play.
func PreloadAllSFX() error {
	initGlobalAudio()
	return globalAudioLoader.PreloadSFX()
}

// MenuSounds queues UI feedback from the menu manager. The queue is global
// because the manager outlives the scene worlds.
type MenuSounds struct{}

var _ navigation.Sounds = MenuSounds{}

// PlaySound queues a sound for the next UpdateAudio.
func (MenuSounds) PlaySound(id cfg.SoundID) {
	if id == cfg.SoundNone {
		return
	}
	globalPendingSFX = append(globalPendingSFX, id)
}

// UpdateAudio plays the sounds queued since the last frame
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	audioData := GetOrCreateAudio(e)
	audioData.SFXVolume = globalSFXVolume
	audioData.PendingSFX = append(audioData.PendingSFX, globalPendingSFX...)
	globalPendingSFX = globalPendingSFX[:0]

	for _, soundID := range dedupeSFX(audioData.PendingSFX) {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// dedupeSFX drops repeats so a burst of identical events in one frame plays
// once.
func dedupeSFX(ids []cfg.SoundID) []cfg.SoundID {
	out := ids[:0:0]
	seen := make(map[cfg.SoundID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		logging.Logger().Warn("sound unavailable", "sound", int(soundID), "error", err)
		return
	}

	player.SetVolume(globalSFXVolume)
	player.Play()
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:    globalAudioContext,
			SFXVolume:  globalSFXVolume,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

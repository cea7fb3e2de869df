package porkbelly

import (
	"log/slog"
	"math/rand/v2"
	"strings"
)

// soundTable resolves names against a SoundBank. Missing sounds are logged
// once and replaced by a silent handle so gameplay continues.
type soundTable struct {
	bank    SoundBank
	missing map[string]Sound
	log     *slog.Logger
}

func newSoundTable(bank SoundBank, log *slog.Logger) *soundTable {
	return &soundTable{bank: bank, missing: make(map[string]Sound), log: log}
}

func (t *soundTable) get(name string) Sound {
	if t.bank != nil {
		if s := t.bank.Sound(name); s != nil {
			return s
		}
	}
	if s, ok := t.missing[name]; ok {
		return s
	}
	t.log.Warn("sound not found", "sound", name)
	s := &silentSound{}
	t.missing[name] = s
	return s
}

// pick returns a uniformly chosen sound from names. names must not be empty.
func (t *soundTable) pick(rng *rand.Rand, names []string) Sound {
	return t.get(names[rng.IntN(len(names))])
}

// silentSound stands in for a sound that failed to load.
type silentSound struct {
	volume  float64
	playing bool
}

func (s *silentSound) Play()               { s.playing = true }
func (s *silentSound) Stop()               { s.playing = false }
func (s *silentSound) SetVolume(v float64) { s.volume = v }
func (s *silentSound) Volume() float64     { return s.volume }
func (s *silentSound) Playing() bool       { return s.playing }

// Music track names. Only these loop; the party track plays once.
var musicTracks = []string{"cave", "desert", "forest", "plains"}

// IsMusic reports whether name is a looping background track.
func IsMusic(name string) bool {
	for _, t := range musicTracks {
		if t == name {
			return true
		}
	}
	return false
}

// voicePrefixes mark animal voice clips played at dialogue volume.
var voicePrefixes = []string{"fox", "ghast", "panda", "pig"}

// DefaultVolume returns the load-time volume for a sound asset: dialogue
// volume for animal voices, music volume for looping tracks, and the sound
// effect volume for everything else, including the party track.
func DefaultVolume(name string, cfg *Config) float64 {
	if IsMusic(name) {
		return cfg.MusicVolume
	}
	for _, p := range voicePrefixes {
		if strings.HasPrefix(name, p) {
			return cfg.DialogueVolume
		}
	}
	return cfg.SFXVolume
}

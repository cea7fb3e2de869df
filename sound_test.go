package porkbelly

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"
)

func TestDefaultVolume(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name string
		want float64
	}{
		{"fox1", cfg.DialogueVolume},
		{"ghast4", cfg.DialogueVolume},
		{"panda2", cfg.DialogueVolume},
		{"pig3", cfg.DialogueVolume},
		{"forest", cfg.MusicVolume},
		{"cave", cfg.MusicVolume},
		{"party", cfg.SFXVolume},
		{"step1", cfg.SFXVolume},
		{"stage_complete", cfg.SFXVolume},
		{"tulip", cfg.SFXVolume},
	}
	for _, tt := range tests {
		if got := DefaultVolume(tt.name, cfg); got != tt.want {
			t.Errorf("DefaultVolume(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsMusic(t *testing.T) {
	for _, name := range []string{"cave", "desert", "forest", "plains"} {
		if !IsMusic(name) {
			t.Errorf("IsMusic(%q) = false", name)
		}
	}
	for _, name := range []string{"party", "firework", "fox1", ""} {
		if IsMusic(name) {
			t.Errorf("IsMusic(%q) = true", name)
		}
	}
}

func TestSoundTableMissingIsSilentAndLoggedOnce(t *testing.T) {
	var buf bytes.Buffer
	bank := newFakeBank()
	bank.missing["gone"] = true
	table := newSoundTable(bank, NewLogger(&buf, "warn", "text"))

	s := table.get("gone")
	if s == nil {
		t.Fatal("missing sound returned nil")
	}
	s.Play()
	s.SetVolume(0.3)
	if !s.Playing() || s.Volume() != 0.3 {
		t.Error("silent sound does not keep state")
	}
	if again := table.get("gone"); again != s {
		t.Error("missing sound not cached")
	}
	if n := strings.Count(buf.String(), "sound not found"); n != 1 {
		t.Errorf("logged %d times, want 1", n)
	}

	if _, ok := table.get("here").(*fakeSound); !ok {
		t.Error("present sound not taken from the bank")
	}
}

func TestSoundTableNilBank(t *testing.T) {
	var buf bytes.Buffer
	table := newSoundTable(nil, NewLogger(&buf, "warn", "text"))
	table.get("anything").Play()
	if !strings.Contains(buf.String(), "sound=anything") {
		t.Errorf("missing log line, got %q", buf.String())
	}
}

func TestSoundTablePick(t *testing.T) {
	bank := newFakeBank()
	var buf bytes.Buffer
	table := newSoundTable(bank, NewLogger(&buf, "warn", "text"))
	rng := rand.New(rand.NewPCG(3, 4))

	for i := 0; i < 200; i++ {
		table.pick(rng, footstepSounds).Play()
	}
	for _, name := range footstepSounds {
		if bank.plays(name) == 0 {
			t.Errorf("%s never picked", name)
		}
	}
	if bank.playsOf(footstepSounds) != 200 {
		t.Errorf("plays = %d, want 200", bank.playsOf(footstepSounds))
	}
}

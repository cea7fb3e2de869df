package porkbelly

import (
	"log/slog"
	"time"

	"github.com/tanema/gween/ease"
)

const crossfadeTime = 2 * time.Second

// Music tracks the ambient soundtrack and swaps tracks with a fade-out.
type Music struct {
	sounds  *soundTable
	tweens  *Tweens
	volume  float64
	current Sound
	name    string
	// fade is the fade-out in flight, or nil.
	fade *Tween
	log  *slog.Logger
}

// Current returns the name of the track that is playing or fading out, or "".
func (m *Music) Current() string {
	return m.name
}

// Crossfade switches to the named track. A playing track is faded to zero
// over two seconds, stopped, and then the new track starts. With nothing
// playing the new track starts immediately. A crossfade still in flight is
// dropped before its track starts, and the fade restarts from the current
// track's volume.
func (m *Music) Crossfade(name string) {
	m.cancelFade()
	next := m.sounds.get(name)
	if m.current == nil {
		m.start(name, next)
		return
	}
	prev := m.current
	m.fade = m.tweens.FadeFunc(prev.Volume(), 0, crossfadeTime, ease.Linear, prev.SetVolume, func() {
		m.fade = nil
		prev.Stop()
		m.start(name, next)
	})
}

// Stop halts the current track and abandons any crossfade in flight.
func (m *Music) Stop() {
	m.cancelFade()
	if m.current != nil {
		m.current.Stop()
	}
	m.current = nil
	m.name = ""
}

func (m *Music) cancelFade() {
	if m.fade != nil {
		m.fade.Stop()
		m.fade = nil
	}
}

func (m *Music) start(name string, s Sound) {
	m.current = s
	m.name = name
	s.SetVolume(m.volume)
	s.Play()
	m.log.Debug("music started", "track", name)
}

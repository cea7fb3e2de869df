// Package audio implements porkbelly sounds on top of beep. Every clip is
// decoded into memory at load time and played through one shared mixer.
package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/Raymond-exe/porkbelly"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

// DefaultFormat is the format every clip is resampled to.
var DefaultFormat = beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2}

// resampleQuality is passed to beep.Resample for clips recorded at another rate.
const resampleQuality = 4

// Bank holds decoded clips by name and the mixer they play through.
// Methods are called from the game loop; streamer state shared with the
// speaker goroutine is only touched under speaker.Lock.
type Bank struct {
	format  beep.Format
	mixer   *beep.Mixer
	sounds  map[string]*Sound
	log     *slog.Logger
	muted   bool
	started bool
}

// NewBank creates an empty bank. log may be nil.
func NewBank(format beep.Format, log *slog.Logger) *Bank {
	if log == nil {
		log = slog.Default()
	}
	return &Bank{
		format: format,
		mixer:  &beep.Mixer{},
		sounds: make(map[string]*Sound),
		log:    log,
	}
}

// Start opens the audio device and begins playing the mixer.
func (b *Bank) Start() error {
	if b.started {
		return nil
	}
	if err := speaker.Init(b.format.SampleRate, b.format.SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(b.mixer)
	b.started = true
	return nil
}

// Close stops every sound and clears the mixer.
func (b *Bank) Close() {
	speaker.Lock()
	for _, s := range b.sounds {
		s.stopLocked()
	}
	b.mixer.Clear()
	speaker.Unlock()
	if b.started {
		speaker.Clear()
	}
}

// SetMuted silences the bank. Muted sounds still track volume and ignore Play.
func (b *Bank) SetMuted(muted bool) {
	b.muted = muted
	if muted {
		speaker.Lock()
		for _, s := range b.sounds {
			s.stopLocked()
		}
		speaker.Unlock()
	}
}

// Mixer returns the mixer every sound plays through.
func (b *Bank) Mixer() *beep.Mixer {
	return b.mixer
}

// Format returns the bank's sample format.
func (b *Bank) Format() beep.Format {
	return b.format
}

// Names returns every loaded sound name, sorted.
func (b *Bank) Names() []string {
	names := make([]string, 0, len(b.sounds))
	for n := range b.sounds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Sound returns the named sound, or nil when it was never loaded.
func (b *Bank) Sound(name string) porkbelly.Sound {
	s, ok := b.sounds[name]
	if !ok {
		return nil
	}
	return s
}

// Add registers buf under name. loop makes Play repeat the clip forever.
func (b *Bank) Add(name string, buf *beep.Buffer, volume float64, loop bool) *Sound {
	s := &Sound{bank: b, name: name, buf: buf, volume: volume, loop: loop}
	b.sounds[name] = s
	return s
}

// LoadFile decodes an .ogg or .wav file into the bank under its base name.
func (b *Bank) LoadFile(path string, volume float64, loop bool) (*Sound, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	buf, err := b.decode(path)
	if err != nil {
		return nil, fmt.Errorf("audio: load %q: %w", path, err)
	}
	return b.Add(name, buf, volume, loop), nil
}

func (b *Bank) decode(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("unsupported format %q", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return nil, err
	}
	defer stream.Close()

	buf := beep.NewBuffer(b.format)
	var src beep.Streamer = stream
	if format.SampleRate != b.format.SampleRate {
		src = beep.Resample(resampleQuality, format.SampleRate, b.format.SampleRate, stream)
	}
	buf.Append(src)
	if err := stream.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}

// LoadDir loads every .ogg and .wav file under dir. Volumes and looping come
// from porkbelly.DefaultVolume and porkbelly.IsMusic. Files that fail to
// decode are skipped; their errors are joined into the returned error, and
// the bank is usable either way.
func LoadDir(dir string, cfg *porkbelly.Config, log *slog.Logger) (*Bank, error) {
	b := NewBank(DefaultFormat, log)
	var errs []error
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".ogg" && ext != ".wav" {
			return nil
		}
		name := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
		if _, err := b.LoadFile(path, porkbelly.DefaultVolume(name, cfg), porkbelly.IsMusic(name)); err != nil {
			b.log.Warn("sound skipped", "path", path, "err", err)
			errs = append(errs, err)
		}
		return nil
	})
	if walkErr != nil {
		errs = append(errs, fmt.Errorf("audio: walk %q: %w", dir, walkErr))
	}
	b.SetMuted(cfg.Mute)
	b.log.Info("sounds loaded", "dir", dir, "count", len(b.sounds), "failed", len(errs))
	return b, errors.Join(errs...)
}

// Sound is one decoded clip. Play restarts it from the beginning.
type Sound struct {
	bank   *Bank
	name   string
	buf    *beep.Buffer
	loop   bool
	volume float64

	ctrl    *beep.Ctrl
	gain    *effects.Volume
	playing atomic.Bool
}

var _ porkbelly.Sound = (*Sound)(nil)

// Name returns the name the sound was registered under.
func (s *Sound) Name() string { return s.name }

// Play starts the clip, restarting it if it is already playing.
func (s *Sound) Play() {
	if s.bank.muted {
		return
	}
	var src beep.Streamer = s.buf.Streamer(0, s.buf.Len())
	if s.loop {
		src = beep.Loop(-1, s.buf.Streamer(0, s.buf.Len()))
	}
	gain := &effects.Volume{Streamer: src, Base: 2}
	setGain(gain, s.volume)
	done := beep.Callback(func() { s.playing.Store(false) })
	ctrl := &beep.Ctrl{Streamer: beep.Seq(gain, done)}

	speaker.Lock()
	s.stopLocked()
	s.ctrl, s.gain = ctrl, gain
	s.playing.Store(true)
	s.bank.mixer.Add(ctrl)
	speaker.Unlock()
}

// Stop halts the clip.
func (s *Sound) Stop() {
	speaker.Lock()
	s.stopLocked()
	speaker.Unlock()
}

func (s *Sound) stopLocked() {
	if s.ctrl != nil {
		s.ctrl.Paused = true
		s.ctrl.Streamer = nil
		s.ctrl, s.gain = nil, nil
	}
	s.playing.Store(false)
}

// SetVolume sets linear volume in [0, 1]; it applies to the running clip too.
func (s *Sound) SetVolume(v float64) {
	s.volume = v
	if s.gain == nil {
		return
	}
	speaker.Lock()
	if s.gain != nil {
		setGain(s.gain, v)
	}
	speaker.Unlock()
}

// Volume returns the linear volume.
func (s *Sound) Volume() float64 { return s.volume }

// Playing reports whether the clip is still producing samples.
func (s *Sound) Playing() bool { return s.playing.Load() }

// setGain converts linear volume to beep's base-2 exponent.
func setGain(v *effects.Volume, linear float64) {
	if linear <= 0 {
		v.Silent = true
		v.Volume = 0
		return
	}
	v.Silent = false
	v.Volume = math.Log2(linear)
}

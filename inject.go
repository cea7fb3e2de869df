package porkbelly

// ScriptKeys is a Keys implementation driven by injected holds instead of a
// keyboard. A hold lasts a number of frames, or until released when frames
// is zero.
type ScriptKeys struct {
	held [keyCount]bool
	left [keyCount]int // frames remaining; 0 means held until released
}

// Held reports whether k is held this frame.
func (s *ScriptKeys) Held(k Key) bool {
	return k < keyCount && s.held[k]
}

// Hold presses k for the given number of frames (0 = until Release).
func (s *ScriptKeys) Hold(k Key, frames int) {
	if k >= keyCount {
		return
	}
	s.held[k] = true
	s.left[k] = frames
}

// Release lets go of k.
func (s *ScriptKeys) Release(k Key) {
	if k >= keyCount {
		return
	}
	s.held[k] = false
	s.left[k] = 0
}

// ReleaseAll lets go of every key.
func (s *ScriptKeys) ReleaseAll() {
	*s = ScriptKeys{}
}

// EndFrame counts down timed holds. Call once per frame after World.Update.
func (s *ScriptKeys) EndFrame() {
	for k := range s.held {
		if !s.held[k] || s.left[k] == 0 {
			continue
		}
		s.left[k]--
		if s.left[k] == 0 {
			s.held[k] = false
		}
	}
}

package porkbelly

import (
	"encoding/json"
	"errors"
	"fmt"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string   `json:"action"`
	Keys   []string `json:"keys,omitempty"`
	Actor  string   `json:"actor,omitempty"`
	Label  string   `json:"label,omitempty"`
	X      float64  `json:"x,omitempty"`
	Y      float64  `json:"y,omitempty"`
	Frames int      `json:"frames,omitempty"`

	keys []Key
}

// script is the top-level JSON structure for an input script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a JSON input script one step per frame. Its Keys
// replace the keyboard for the session.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	keys      ScriptKeys
}

// LoadScript parses a JSON input script. Unknown actions and key names are
// rejected here rather than when the step runs.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, errors.New("parse script: no steps")
	}
	for i := range s.Steps {
		st := &s.Steps[i]
		switch st.Action {
		case "hold", "release":
			for _, name := range st.Keys {
				k, ok := ParseKey(name)
				if !ok {
					return nil, fmt.Errorf("parse script: step %d: unknown key %q", i, name)
				}
				st.keys = append(st.keys, k)
			}
			if st.Action == "hold" && len(st.keys) == 0 {
				return nil, fmt.Errorf("parse script: step %d: hold needs keys", i)
			}
		case "interact":
			if st.Actor == "" {
				return nil, fmt.Errorf("parse script: step %d: interact needs an actor", i)
			}
		case "wait", "teleport", "log":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// Keys returns the scripted key state to pass to World.Update.
func (r *ScriptRunner) Keys() Keys {
	return &r.keys
}

// Done reports whether every step has run and the last wait has elapsed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the script by one frame. Call it before World.Update.
func (r *ScriptRunner) Step(w *World) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "hold":
		for _, k := range st.keys {
			r.keys.Hold(k, st.Frames)
		}
	case "release":
		if len(st.keys) == 0 {
			r.keys.ReleaseAll()
		}
		for _, k := range st.keys {
			r.keys.Release(k)
		}
	case "interact":
		res := w.Interact(st.Actor)
		w.log.Info("script interact", "actor", st.Actor, "result", res.String())
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "teleport":
		w.actors.Player().Body.SetPosition(Vec2{st.X, st.Y})
	case "log":
		p := w.actors.Player().Position()
		w.log.Info("script", "label", st.Label, "frame", w.frame, "x", p.X, "y", p.Y)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

// EndFrame counts down timed key holds. Call it after World.Update.
func (r *ScriptRunner) EndFrame() {
	r.keys.EndFrame()
}

package host

import (
	"strings"
	"testing"
)

const hashAtlasJSON = `{
  "frames": {
    "p1_stand": {
      "frame": {"x": 0, "y": 0, "w": 14, "h": 16},
      "rotated": false,
      "trimmed": false,
      "spriteSourceSize": {"x": 0, "y": 0, "w": 14, "h": 16},
      "sourceSize": {"w": 14, "h": 16}
    },
    "frame_04": {
      "frame": {"x": 100, "y": 50, "w": 12, "h": 15},
      "rotated": false,
      "trimmed": true,
      "spriteSourceSize": {"x": 1, "y": 1, "w": 12, "h": 15},
      "sourceSize": {"w": 14, "h": 16}
    }
  },
  "meta": {"image": "player.png"}
}`

const listAtlasJSON = `{
  "frames": [
    {"filename": "firework_0", "frame": {"x": 0, "y": 0, "w": 32, "h": 32}},
    {"filename": "firework_1", "frame": {"x": 32, "y": 0, "w": 32, "h": 32}, "rotated": true}
  ]
}`

const multiPageJSON = `{
  "textures": [
    {
      "image": "animals-0.png",
      "frames": {
        "panda_00": {"frame": {"x": 0, "y": 0, "w": 32, "h": 32}, "sourceSize": {"w": 32, "h": 32}}
      }
    },
    {
      "image": "animals-1.png",
      "frames": [
        {"filename": "ghast_00", "frame": {"x": 10, "y": 20, "w": 50, "h": 50}}
      ]
    }
  ]
}`

func TestLoadAtlas_Hash(t *testing.T) {
	atlas, err := LoadAtlas([]byte(hashAtlasJSON), nil, nil)
	if err != nil {
		t.Fatalf("LoadAtlas: %v", err)
	}
	if atlas.Len() != 2 {
		t.Errorf("region count = %d, want 2", atlas.Len())
	}
	r, ok := atlas.Region("p1_stand")
	if !ok {
		t.Fatal("p1_stand missing")
	}
	if r.X != 0 || r.Y != 0 || r.Width != 14 || r.Height != 16 || r.Page != 0 {
		t.Errorf("p1_stand = %+v", r)
	}
}

func TestLoadAtlas_TrimmedRegion(t *testing.T) {
	atlas, err := LoadAtlas([]byte(hashAtlasJSON), nil, nil)
	if err != nil {
		t.Fatalf("LoadAtlas: %v", err)
	}
	r, _ := atlas.Region("frame_04")
	if r.OffsetX != 1 || r.OffsetY != 1 {
		t.Errorf("trimmed OffsetX/Y = %d/%d, want 1/1", r.OffsetX, r.OffsetY)
	}
	if r.OriginalW != 14 || r.OriginalH != 16 {
		t.Errorf("trimmed OriginalW/H = %d/%d, want 14/16", r.OriginalW, r.OriginalH)
	}
}

func TestLoadAtlas_FrameList(t *testing.T) {
	atlas, err := LoadAtlas([]byte(listAtlasJSON), nil, nil)
	if err != nil {
		t.Fatalf("LoadAtlas: %v", err)
	}
	if !atlas.Has("firework_0") || !atlas.Has("firework_1") {
		t.Fatal("firework frames missing")
	}
	r, _ := atlas.Region("firework_1")
	if r.X != 32 || !r.Rotated {
		t.Errorf("firework_1 = %+v", r)
	}
	// Without sourceSize the original size falls back to the frame size.
	if r.OriginalW != 32 || r.OriginalH != 32 {
		t.Errorf("firework_1 original = %dx%d, want 32x32", r.OriginalW, r.OriginalH)
	}
}

func TestLoadAtlas_MultiPage(t *testing.T) {
	atlas, err := LoadAtlas([]byte(multiPageJSON), nil, nil)
	if err != nil {
		t.Fatalf("LoadAtlas: %v", err)
	}
	r0, _ := atlas.Region("panda_00")
	if r0.Page != 0 {
		t.Errorf("panda_00 Page = %d, want 0", r0.Page)
	}
	r1, ok := atlas.Region("ghast_00")
	if !ok || r1.Page != 1 || r1.X != 10 || r1.Y != 20 {
		t.Errorf("ghast_00 = %+v", r1)
	}
}

func TestLoadAtlas_Errors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"invalid json", `{invalid`, "parse atlas JSON"},
		{"no frames", `{"meta":{}}`, "neither"},
		{"unnamed frame", `{"frames": [{"frame": {"x": 0}}]}`, "no filename"},
		{"bad hash", `{"frames": {"a": 5}}`, "parse atlas frames"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadAtlas([]byte(tt.json), nil, nil)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want substring %q", err, tt.want)
			}
		})
	}
}

func TestAtlas_Missing(t *testing.T) {
	atlas, err := LoadAtlas([]byte(hashAtlasJSON), nil, nil)
	if err != nil {
		t.Fatalf("LoadAtlas: %v", err)
	}
	if _, ok := atlas.Region("nonexistent"); ok {
		t.Error("nonexistent region reported present")
	}
	if atlas.Has("nonexistent") {
		t.Error("Has(nonexistent) = true")
	}
}

package levels

import (
	"errors"
	"testing"
	"testing/fstest"
)

func TestLoadEmbedded(t *testing.T) {
	lvls, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(lvls) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(lvls))
	}
	if len(lvls[0].Platforms) != 2 || len(lvls[1].Platforms) != 4 {
		t.Fatalf("unexpected platform counts %d/%d", len(lvls[0].Platforms), len(lvls[1].Platforms))
	}
	floor := lvls[0].Platforms[0]
	if floor.Size().X != 1000 || floor.Position().Y != 810 {
		t.Fatalf("unexpected floor %+v", floor)
	}
	if lvls[1].Goal.Vector().Y != 195 {
		t.Fatalf("unexpected level 2 goal %+v", lvls[1].Goal)
	}
}

func TestLoadFromFSErrors(t *testing.T) {
	cases := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"empty_set", `{"levels": []}`, ErrNoLevels},
		{"bad_json", `{"levels": [`, nil},
		{"zero_size_platform", `{"levels": [{"platforms": [{"x": 1, "y": 1, "w": 0, "h": 5}]}]}`, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fsys := fstest.MapFS{"l.json": &fstest.MapFile{Data: []byte(c.data)}}
			_, err := LoadFromFS(fsys, "l.json")
			if err == nil {
				t.Fatalf("expected error")
			}
			if c.wantErr != nil && !errors.Is(err, c.wantErr) {
				t.Fatalf("expected %v, got %v", c.wantErr, err)
			}
		})
	}
}

func TestLoadFromFSMissing(t *testing.T) {
	if _, err := LoadFromFS(fstest.MapFS{}, "nope.json"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

package level

import (
	"strings"
	"testing"
)

func TestParseJSONDefaults(t *testing.T) {
	data := []byte(`{
		"objects": [
			{"id": "a", "type": "block", "x": 3, "y": 1},
			{"type": "spike", "x": 5, "y": 1, "rotation": 90}
		],
		"length": 50,
		"gameMode": "classic"
	}`)

	l, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}

	if l.Length != 50 {
		t.Errorf("Length = %d, expected 50", l.Length)
	}
	if l.GameMode != ModeClassic {
		t.Errorf("GameMode = %q, expected classic", l.GameMode)
	}
	if l.ShowHitboxes {
		t.Error("ShowHitboxes should default to false")
	}
	if len(l.Objects) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(l.Objects))
	}
	if l.Objects[0].Rotation != 0 {
		t.Errorf("missing rotation should default to 0, got %d", l.Objects[0].Rotation)
	}
	if l.Objects[1].Rotation != 90 {
		t.Errorf("rotation = %d, expected 90", l.Objects[1].Rotation)
	}
	if l.Objects[1].ID == "" {
		t.Error("missing ID should be substituted")
	}
}

func TestParseJSONUnknownKind(t *testing.T) {
	data := []byte(`{
		"objects": [{"id": "a", "type": "lava", "x": 0, "y": 1}],
		"length": 10,
		"gameMode": "classic"
	}`)

	if _, err := ParseJSON(data); err == nil {
		t.Error("unknown entity kind should be rejected")
	} else if !strings.Contains(err.Error(), "lava") {
		t.Errorf("error should name the bad kind: %v", err)
	}
}

func TestParseJSONUnknownMode(t *testing.T) {
	data := []byte(`{"objects": [], "length": 10, "gameMode": "hardcore"}`)
	if _, err := ParseJSON(data); err == nil {
		t.Error("unknown game mode should be rejected")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	l := New("roundtrip", 40)
	l.GameMode = ModeFree
	l.ShowHitboxes = true
	l.Place(KindBlock, 2, 1)
	l.Place(KindOrbGravity, 7, 3)
	l.Rotate(7, 3)

	data, err := EncodeJSON(l)
	if err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}

	got, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}

	if got.Name != l.Name || got.Length != l.Length || got.GameMode != l.GameMode {
		t.Errorf("header mismatch: %+v vs %+v", got, l)
	}
	if !got.ShowHitboxes {
		t.Error("ShowHitboxes not preserved")
	}
	if len(got.Objects) != len(l.Objects) {
		t.Fatalf("object count mismatch: %d vs %d", len(got.Objects), len(l.Objects))
	}
	for i := range got.Objects {
		if got.Objects[i] != l.Objects[i] {
			t.Errorf("object %d mismatch: %+v vs %+v", i, got.Objects[i], l.Objects[i])
		}
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	l := New("yaml-level", 25)
	l.Place(KindSpike, 4, 1)
	l.Place(KindPortalSpeedFast, 9, 2)

	data, err := EncodeYAML(l)
	if err != nil {
		t.Fatalf("EncodeYAML: %v", err)
	}

	got, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}

	if got.Length != 25 || got.GameMode != ModeClassic {
		t.Errorf("header mismatch: %+v", got)
	}
	if len(got.Objects) != 2 {
		t.Fatalf("object count = %d, expected 2", len(got.Objects))
	}
	if got.Objects[1].Type != KindPortalSpeedFast {
		t.Errorf("object type = %q", got.Objects[1].Type)
	}
}

func TestParseASCII(t *testing.T) {
	l := ParseASCII("t", ModeClassic, []string{
		"..o.",
		"#.^.",
	})

	if l.GameMode != ModeClassic {
		t.Errorf("GameMode = %q", l.GameMode)
	}
	if l.Length != 4+6 {
		t.Errorf("Length = %d, expected widest line plus margin", l.Length)
	}

	// Bottom line is row 1.
	if i := l.ObjectAt(0, 1); i < 0 || l.Objects[i].Type != KindBlock {
		t.Error("expected block at (0, 1)")
	}
	if i := l.ObjectAt(2, 1); i < 0 || l.Objects[i].Type != KindSpike {
		t.Error("expected spike at (2, 1)")
	}
	if i := l.ObjectAt(2, 2); i < 0 || l.Objects[i].Type != KindOrbJump {
		t.Error("expected orb at (2, 2)")
	}
	if l.ObjectAt(1, 1) != -1 {
		t.Error("expected empty cell at (1, 1)")
	}
}

func TestBuiltinLevelsAreValid(t *testing.T) {
	levels := Builtin()
	if len(levels) == 0 {
		t.Fatal("no builtin levels")
	}
	for _, l := range levels {
		if err := Validate(l); err != nil {
			t.Errorf("builtin level %q invalid: %v", l.Name, err)
		}
		if len(l.Objects) == 0 {
			t.Errorf("builtin level %q has no objects", l.Name)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Level)
		code string
	}{
		{
			name: "non-positive length",
			mod:  func(l *Level) { l.Length = 0 },
			code: "NON_POSITIVE_LENGTH",
		},
		{
			name: "unknown mode",
			mod:  func(l *Level) { l.GameMode = "arena" },
			code: "UNKNOWN_MODE",
		},
		{
			name: "unknown kind",
			mod:  func(l *Level) { l.Objects[0].Type = "lava" },
			code: "UNKNOWN_KIND",
		},
		{
			name: "negative column",
			mod:  func(l *Level) { l.Objects[0].X = -1 },
			code: "NEGATIVE_COLUMN",
		},
		{
			name: "row below floor",
			mod:  func(l *Level) { l.Objects[0].Y = 0 },
			code: "ROW_BELOW_FLOOR",
		},
		{
			name: "bad rotation",
			mod:  func(l *Level) { l.Objects[0].Rotation = 45 },
			code: "BAD_ROTATION",
		},
		{
			name: "duplicate id",
			mod:  func(l *Level) { l.Objects[1].ID = l.Objects[0].ID },
			code: "DUPLICATE_ID",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := New("v", 10)
			l.Place(KindBlock, 1, 1)
			l.Place(KindSpike, 3, 1)
			tc.mod(l)

			err := Validate(l)
			if err == nil {
				t.Fatal("expected validation error")
			}
			var verr ValidationError
			ok := false
			if v, isV := err.(ValidationError); isV {
				verr, ok = v, true
			}
			if !ok {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if verr.Code != tc.code {
				t.Errorf("code = %s, expected %s", verr.Code, tc.code)
			}
		})
	}

	t.Run("degenerate empty level is valid", func(t *testing.T) {
		l := New("empty", 1)
		if err := Validate(l); err != nil {
			t.Errorf("empty level should validate: %v", err)
		}
	})
}

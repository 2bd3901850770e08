package level

import (
	"encoding/json"
	"fmt"
)

// jsonLevel is the persisted JSON shape for a level.
// objects, length and gameMode are required; everything else defaults.
type jsonLevel struct {
	Name         string       `json:"name,omitempty"`
	Objects      []jsonObject `json:"objects"`
	Length       int          `json:"length"`
	GameMode     string       `json:"gameMode"`
	ShowHitboxes bool         `json:"showHitboxes,omitempty"`
}

type jsonObject struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Rotation *int   `json:"rotation,omitempty"`
}

// ParseJSON decodes a persisted JSON level. Missing optional fields are
// substituted with defaults; unknown entity kinds are rejected so the
// simulation never sees one.
func ParseJSON(data []byte) (*Level, error) {
	var jl jsonLevel
	if err := json.Unmarshal(data, &jl); err != nil {
		return nil, fmt.Errorf("level: json unmarshal: %w", err)
	}

	mode := GameMode(jl.GameMode)
	if jl.GameMode == "" {
		mode = ModeClassic
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("level: unknown game mode %q", jl.GameMode)
	}

	l := &Level{
		Name:         jl.Name,
		Objects:      make([]Object, 0, len(jl.Objects)),
		Length:       jl.Length,
		GameMode:     mode,
		ShowHitboxes: jl.ShowHitboxes,
	}

	for i, jo := range jl.Objects {
		kind := EntityKind(jo.Type)
		if !Known(kind) {
			return nil, fmt.Errorf("level: object %d: unknown entity kind %q", i, jo.Type)
		}
		rot := 0
		if jo.Rotation != nil {
			rot = normalizeRotation(*jo.Rotation)
		}
		id := jo.ID
		if id == "" {
			id = fmt.Sprintf("obj-%d", i+1)
		}
		l.Objects = append(l.Objects, Object{
			ID:       id,
			Type:     kind,
			X:        jo.X,
			Y:        jo.Y,
			Rotation: rot,
		})
	}

	return l, nil
}

// EncodeJSON serializes a level to its persisted JSON form.
func EncodeJSON(l *Level) ([]byte, error) {
	jl := jsonLevel{
		Name:         l.Name,
		Objects:      make([]jsonObject, 0, len(l.Objects)),
		Length:       l.Length,
		GameMode:     string(l.GameMode),
		ShowHitboxes: l.ShowHitboxes,
	}
	for _, o := range l.Objects {
		jo := jsonObject{
			ID:   o.ID,
			Type: string(o.Type),
			X:    o.X,
			Y:    o.Y,
		}
		if o.Rotation != 0 {
			rot := o.Rotation
			jo.Rotation = &rot
		}
		jl.Objects = append(jl.Objects, jo)
	}

	data, err := json.MarshalIndent(jl, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("level: json marshal: %w", err)
	}
	return data, nil
}

// normalizeRotation clamps arbitrary degree values to {0, 90, 180, 270}.
func normalizeRotation(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return (deg / 90) * 90
}

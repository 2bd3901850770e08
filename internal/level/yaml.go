package level

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlLevel mirrors jsonLevel for the YAML level-file format used by the
// bundled level directory and the editor's YAML export.
type yamlLevel struct {
	Name         string       `yaml:"name,omitempty"`
	Objects      []yamlObject `yaml:"objects"`
	Length       int          `yaml:"length"`
	GameMode     string       `yaml:"game_mode"`
	ShowHitboxes bool         `yaml:"show_hitboxes,omitempty"`
}

type yamlObject struct {
	ID       string `yaml:"id,omitempty"`
	Type     string `yaml:"type"`
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
	Rotation int    `yaml:"rotation,omitempty"`
}

// ParseYAML decodes a YAML level file.
func ParseYAML(data []byte) (*Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return nil, fmt.Errorf("level: yaml unmarshal: %w", err)
	}

	mode := GameMode(yl.GameMode)
	if yl.GameMode == "" {
		mode = ModeClassic
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("level: unknown game mode %q", yl.GameMode)
	}

	l := &Level{
		Name:         yl.Name,
		Objects:      make([]Object, 0, len(yl.Objects)),
		Length:       yl.Length,
		GameMode:     mode,
		ShowHitboxes: yl.ShowHitboxes,
	}

	for i, yo := range yl.Objects {
		kind := EntityKind(yo.Type)
		if !Known(kind) {
			return nil, fmt.Errorf("level: object %d: unknown entity kind %q", i, yo.Type)
		}
		id := yo.ID
		if id == "" {
			id = fmt.Sprintf("obj-%d", i+1)
		}
		l.Objects = append(l.Objects, Object{
			ID:       id,
			Type:     kind,
			X:        yo.X,
			Y:        yo.Y,
			Rotation: normalizeRotation(yo.Rotation),
		})
	}

	return l, nil
}

// EncodeYAML serializes a level to the YAML level-file form.
func EncodeYAML(l *Level) ([]byte, error) {
	yl := yamlLevel{
		Name:         l.Name,
		Objects:      make([]yamlObject, 0, len(l.Objects)),
		Length:       l.Length,
		GameMode:     string(l.GameMode),
		ShowHitboxes: l.ShowHitboxes,
	}
	for _, o := range l.Objects {
		yl.Objects = append(yl.Objects, yamlObject{
			ID:       o.ID,
			Type:     string(o.Type),
			X:        o.X,
			Y:        o.Y,
			Rotation: o.Rotation,
		})
	}

	data, err := yaml.Marshal(&yl)
	if err != nil {
		return nil, fmt.Errorf("level: yaml marshal: %w", err)
	}
	return data, nil
}

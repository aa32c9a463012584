// Package textures loads the flat voxel-id -> texture-id lookup table the
// mesher consumes when emitting quads. It never decodes image data; atlas
// resolution is the caller's concern.
package textures

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Table is indexed directly by voxel id. Table[0] is the reserved air entry
// and is never read during quad emission.
type Table []float32

// manifest is the on-disk YAML shape:
//
//	textures:
//	  - id: 1
//	    texture: 7
type manifest struct {
	Textures []struct {
		ID      int     `yaml:"id"`
		Texture float32 `yaml:"texture"`
	} `yaml:"textures"`
}

// LoadTable reads a YAML manifest and produces a dense Table sized to
// max(id)+1, with unlisted ids left at zero.
func LoadTable(path string) (Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("textures: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("textures: %s: %w", path, err)
	}

	maxID := 0
	for _, entry := range m.Textures {
		if entry.ID < 0 {
			return nil, fmt.Errorf("textures: %s: negative voxel id %d", path, entry.ID)
		}
		if entry.ID > maxID {
			maxID = entry.ID
		}
	}

	table := make(Table, maxID+1)
	for _, entry := range m.Textures {
		table[entry.ID] = entry.Texture
	}
	return table, nil
}

package matrices

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cae-tools/astermat/commscript"
)

var (
	// ErrUndefinedMaterial reports a group assignment that references a
	// material name absent from the parsed material list.
	ErrUndefinedMaterial = errors.New("undefined material")
	// ErrEmptyIndex reports that no family id could be bound to any
	// material row.
	ErrEmptyIndex = errors.New("failed to build any material mappings from mesh groups")
)

// BuildTagToMaterialIndex composes the family-id to group-name map with
// the group-to-material assignments and the ordered material list,
// producing family id -> 1-based material row index. A family whose
// group is not referenced by any assignment is skipped; a referenced but
// undefined material is an error.
func BuildTagToMaterialIndex(familyNames map[int]string,
	materials []commscript.Material,
	assignments map[string]string) (map[int]int, error) {

	materialLookup := make(map[string]int, len(materials))
	for i, m := range materials {
		materialLookup[m.Name] = i + 1
	}

	// Family ids are visited in sorted order so failures are
	// deterministic when several groups reference undefined materials.
	familyIDs := make([]int, 0, len(familyNames))
	for id := range familyNames {
		familyIDs = append(familyIDs, id)
	}
	sort.Ints(familyIDs)

	tagToMaterial := make(map[int]int)
	for _, familyID := range familyIDs {
		groupName := familyNames[familyID]
		materialName, ok := assignments[groupName]
		if !ok {
			continue
		}
		row, ok := materialLookup[materialName]
		if !ok {
			return nil, fmt.Errorf("%w: '%s' referenced by group '%s'",
				ErrUndefinedMaterial, materialName, groupName)
		}
		tagToMaterial[familyID] = row
	}

	if len(tagToMaterial) == 0 {
		return nil, ErrEmptyIndex
	}
	return tagToMaterial, nil
}

package mesh

import (
	"regexp"
	"strconv"
	"strings"
)

// famEntry matches MED family group names like FAM_7_VOLUME1 or
// FAM_-2_Group_Of_Nodes, capturing the signed family id.
var famEntry = regexp.MustCompile(`^FAM_(-?\d+)_`)

// FamilyNames maps each family id found in the mesh metadata to its
// group name. A mesh without family metadata yields an empty map, not an
// error: absence means the mesh carries no named groups. Duplicate ids
// are not expected; the last one read wins.
func FamilyNames(m *Mesh) map[int]string {
	names := make(map[int]string)
	fas := m.Meta.Child("FAS")
	if fas == nil {
		return names
	}

	for _, meshName := range fas.Names() {
		eleme := fas.Child(meshName + "/ELEME")
		if eleme == nil {
			continue
		}
		for _, key := range eleme.Names() {
			sub := famEntry.FindStringSubmatch(key)
			if sub == nil {
				continue
			}
			familyID, _ := strconv.Atoi(sub[1])

			nom := eleme.Child(key + "/GRO/NOM")
			if nom == nil || len(nom.Records) == 0 {
				continue
			}
			names[familyID] = decodeName(nom.Records[0])
		}
	}
	return names
}

// decodeName converts a fixed-width character-code record into a string,
// dropping NUL codes and trimming whitespace.
func decodeName(record []byte) string {
	var b strings.Builder
	for _, c := range record {
		if c != 0 {
			b.WriteByte(c)
		}
	}
	return strings.TrimSpace(b.String())
}

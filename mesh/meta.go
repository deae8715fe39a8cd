package mesh

import (
	"sort"
	"strings"
)

// MetaGroup is one group in the mesh's hierarchical metadata container,
// mirroring the MED file layout (groups nested by name, leaf datasets of
// fixed-width character-code records).
type MetaGroup struct {
	Groups  map[string]*MetaGroup
	Records [][]byte // fixed-width character-code records, NUL padded
}

// NewMetaGroup creates an empty metadata group.
func NewMetaGroup() *MetaGroup {
	return &MetaGroup{Groups: make(map[string]*MetaGroup)}
}

// Child resolves a slash-separated path below g. Nil receiver or a
// missing component yields nil.
func (g *MetaGroup) Child(path string) *MetaGroup {
	cur := g
	for _, name := range strings.Split(path, "/") {
		if cur == nil {
			return nil
		}
		cur = cur.Groups[name]
	}
	return cur
}

// Ensure resolves a slash-separated path below g, creating groups along
// the way.
func (g *MetaGroup) Ensure(path string) *MetaGroup {
	cur := g
	for _, name := range strings.Split(path, "/") {
		next, ok := cur.Groups[name]
		if !ok {
			next = NewMetaGroup()
			cur.Groups[name] = next
		}
		cur = next
	}
	return cur
}

// Names returns the sorted child group names.
func (g *MetaGroup) Names() []string {
	names := make([]string, 0, len(g.Groups))
	for name := range g.Groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Package mesh holds the in-memory mesh model consumed by the matrix
// extraction pipeline: point coordinates, typed cell blocks with raw
// 0-based connectivity, per-block cell-data arrays, and the hierarchical
// family metadata carried by Salome-Meca meshes.
package mesh

import (
	"fmt"
	"path/filepath"
	"strings"
)

// CellType represents different cell types
type CellType int

const (
	Point CellType = iota
	Line
	Triangle
	Quad
	Tet
	Hex
	Prism
	Pyramid
	Tet10
)

func (c CellType) String() string {
	return [...]string{"Point", "Line", "Triangle", "Quad", "Tet", "Hex", "Prism", "Pyramid", "Tet10"}[c]
}

// NumNodes returns the per-cell node count for linear and supported
// quadratic cell types.
func (c CellType) NumNodes() int {
	return [...]int{1, 2, 3, 4, 4, 8, 6, 5, 10}[c]
}

// CellBlock groups consecutive cells of one type, in file order.
type CellBlock struct {
	Type CellType
	Conn [][]int // 0-based point indices [ncells][nodes_per_cell]
}

// Mesh is the output contract of the mesh readers.
type Mesh struct {
	Points     [][]float64 // Point coordinates [npoints][3]
	CellBlocks []CellBlock

	// CellData maps an attribute name to one integer array per cell
	// block, parallel to CellBlocks. Readers record per-cell family
	// tags here.
	CellData map[string][][]int

	// Meta is the hierarchical metadata container mapping family ids
	// to group names. Nil when the mesh carries no named groups.
	Meta *MetaGroup

	FormatVersion string
	MeshName      string
}

// NewMesh creates an empty mesh
func NewMesh() *Mesh {
	return &Mesh{
		CellData: make(map[string][][]int),
		MeshName: "Mesh_1",
	}
}

// NumPoints returns the point count.
func (m *Mesh) NumPoints() int { return len(m.Points) }

// NumCells returns the total cell count over all blocks.
func (m *Mesh) NumCells() (n int) {
	for _, b := range m.CellBlocks {
		n += len(b.Conn)
	}
	return
}

// ReadMeshFile reads a mesh file based on extension
func ReadMeshFile(filename string) (*Mesh, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".msh":
		return ReadGmsh22(filename)
	default:
		return nil, fmt.Errorf("unsupported mesh format: %s", ext)
	}
}

// PrintStatistics prints mesh statistics
func (m *Mesh) PrintStatistics() {
	fmt.Printf("Mesh Statistics:\n")
	fmt.Printf("  Points: %d\n", m.NumPoints())
	fmt.Printf("  Cells: %d in %d blocks\n", m.NumCells(), len(m.CellBlocks))
	for _, b := range m.CellBlocks {
		fmt.Printf("    %s: %d\n", b.Type, len(b.Conn))
	}
}

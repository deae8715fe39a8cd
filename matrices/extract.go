package matrices

import (
	"fmt"
	"os"

	"github.com/cae-tools/astermat/commscript"
	"github.com/cae-tools/astermat/mesh"
	"github.com/cae-tools/astermat/utils"
)

// CaseMatrices bundles the extraction output plus provenance for
// reporting.
type CaseMatrices struct {
	CommFile string
	MeshFile string

	NumPoints     int
	NumCellBlocks int

	Node utils.Matrix
	Elem [][]int

	// Materials and Mater are absent in material-agnostic mode; the
	// element matrix then carries raw family tags in column 1.
	Materials []commscript.Material
	Mater     utils.Matrix
}

// ExtractCase runs the whole pipeline over a case directory: discovery,
// command-script parsing, mesh reading, index composition and matrix
// assembly. With agnostic set, the command script's material statements
// are ignored and raw family tags land in the element matrix.
func ExtractCase(dir string, agnostic bool) (*CaseMatrices, error) {
	commPath, meshPath, err := LocateCaseFiles(dir)
	if err != nil {
		return nil, err
	}

	commText, err := os.ReadFile(commPath)
	if err != nil {
		return nil, err
	}
	msh, err := mesh.ReadMeshFile(meshPath)
	if err != nil {
		return nil, err
	}
	if msh.NumPoints() == 0 {
		return nil, fmt.Errorf("mesh '%s' contains no points", meshPath)
	}

	cm := &CaseMatrices{
		CommFile:      commPath,
		MeshFile:      meshPath,
		NumPoints:     msh.NumPoints(),
		NumCellBlocks: len(msh.CellBlocks),
		Node:          BuildNodeMatrix(msh),
	}

	if agnostic {
		if cm.Elem, err = BuildElemMatrix(msh, nil); err != nil {
			return nil, err
		}
		return cm, nil
	}

	materials, err := commscript.ParseMaterials(string(commText))
	if err != nil {
		return nil, err
	}
	assignments, err := commscript.ParseGroupAssignments(string(commText))
	if err != nil {
		return nil, err
	}

	tagToMaterial, err := BuildTagToMaterialIndex(mesh.FamilyNames(msh), materials, assignments)
	if err != nil {
		return nil, err
	}
	if cm.Elem, err = BuildElemMatrix(msh, tagToMaterial); err != nil {
		return nil, err
	}

	cm.Materials = materials
	cm.Mater = BuildMaterMatrix(materials)
	return cm, nil
}

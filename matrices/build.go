package matrices

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cae-tools/astermat/commscript"
	"github.com/cae-tools/astermat/mesh"
	"github.com/cae-tools/astermat/utils"
)

var (
	// ErrNoVolumeBlock reports a mesh without any tetrahedral cell block.
	ErrNoVolumeBlock = errors.New("no tetrahedral cell block found in mesh")
	// ErrWrongArity reports a volume block whose cells are not 4-node
	// tetrahedra.
	ErrWrongArity = errors.New("only linear 4-node tetrahedra are supported")
	// ErrNoTags reports that no per-cell tag array covers the volume
	// block.
	ErrNoTags = errors.New("no cell tags found for tetrahedral block")
	// ErrLengthMismatch reports a tag array whose length differs from
	// the block's cell count.
	ErrLengthMismatch = errors.New("mismatch between cell tags and connectivity lengths")
	// ErrUnmappedFamily reports family ids present in the volume block
	// but absent from the tag-to-material index.
	ErrUnmappedFamily = errors.New("no material mapping found for family ids")
)

// TetraTypeID is the element-type id written into column 0 of the
// element matrix. Only 4-node tetrahedra are supported.
const TetraTypeID = 1

// volumeCellTypes is the accepted tetrahedral type set for volume block
// selection. Tet10 blocks are selected, then rejected by the arity
// check, matching the supported-cell contract.
var volumeCellTypes = map[mesh.CellType]bool{
	mesh.Tet:   true,
	mesh.Tet10: true,
}

// locateVolumeBlock returns the first tetrahedral cell block in file
// order. Additional tetrahedral blocks are ignored.
func locateVolumeBlock(msh *mesh.Mesh) (int, *mesh.CellBlock, error) {
	for i := range msh.CellBlocks {
		block := &msh.CellBlocks[i]
		if !volumeCellTypes[block.Type] {
			continue
		}
		if n := block.Type.NumNodes(); n != 4 {
			return 0, nil, fmt.Errorf("%w: got %d nodes per cell", ErrWrongArity, n)
		}
		return i, block, nil
	}
	return 0, nil, ErrNoVolumeBlock
}

// cellTags fetches the per-cell family tags for the given block index.
// Policy: an attribute literally named "cell_tags" wins when it covers
// the block; otherwise the first attribute (in sorted key order) long
// enough to cover the block index is used.
func cellTags(msh *mesh.Mesh, blockIndex int) ([]int, error) {
	if arrays, ok := msh.CellData["cell_tags"]; ok && blockIndex < len(arrays) {
		return arrays[blockIndex], nil
	}

	keys := make([]string, 0, len(msh.CellData))
	for key := range msh.CellData {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if arrays := msh.CellData[key]; blockIndex < len(arrays) {
			return arrays[blockIndex], nil
		}
	}
	return nil, ErrNoTags
}

// BuildElemMatrix assembles the M×6 element matrix
// [type_id, material_row, n1, n2, n3, n4] for the mesh's first
// tetrahedral block, with 1-based point indices. When tagToMaterial is
// nil the raw family tag is written into the material column
// (material-agnostic mode); otherwise every tag must map to a material
// row.
//
// Unmapped tags are detected via a -1 sentinel, which assumes -1 never
// occurs as a real element-family id. MED meshes use positive ids for
// element families, so this holds for valid input.
func BuildElemMatrix(msh *mesh.Mesh, tagToMaterial map[int]int) ([][]int, error) {
	blockIndex, block, err := locateVolumeBlock(msh)
	if err != nil {
		return nil, err
	}
	tags, err := cellTags(msh, blockIndex)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(block.Conn) {
		return nil, fmt.Errorf("%w: %d tags vs %d cells", ErrLengthMismatch, len(tags), len(block.Conn))
	}

	var missing utils.Index
	elem := make([][]int, len(block.Conn))
	for i, conn := range block.Conn {
		matCol := tags[i]
		if tagToMaterial != nil {
			row, ok := tagToMaterial[tags[i]]
			if !ok {
				row = -1
				if !missing.Contains(tags[i]) {
					missing = append(missing, tags[i])
				}
			}
			matCol = row
		}

		elem[i] = []int{TetraTypeID, matCol, conn[0] + 1, conn[1] + 1, conn[2] + 1, conn[3] + 1}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnmappedFamily, missing.Sort())
	}
	return elem, nil
}

// BuildNodeMatrix returns the N×3 node coordinate matrix, one row per
// mesh point in order.
func BuildNodeMatrix(msh *mesh.Mesh) utils.Matrix {
	data := make([]float64, 0, 3*len(msh.Points))
	for _, p := range msh.Points {
		data = append(data, p[0], p[1], p[2])
	}
	return utils.NewMatrix(len(msh.Points), 3, data)
}

// BuildMaterMatrix returns the K×2 material matrix [E, NU]; row i holds
// the (i+1)-th parsed material.
func BuildMaterMatrix(materials []commscript.Material) utils.Matrix {
	data := make([]float64, 0, 2*len(materials))
	for _, m := range materials {
		data = append(data, m.E, m.Nu)
	}
	return utils.NewMatrix(len(materials), 2, data)
}

package mesh

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// gmshCellType maps Gmsh v2.2 element type numbers to our CellType
var gmshCellType = map[int]CellType{
	1:  Line,     // 2-node line
	2:  Triangle, // 3-node triangle
	3:  Quad,     // 4-node quadrangle
	4:  Tet,      // 4-node tetrahedron
	5:  Hex,      // 8-node hexahedron
	6:  Prism,    // 6-node prism
	7:  Pyramid,  // 5-node pyramid
	11: Tet10,    // 10-node tetrahedron
	15: Point,    // 1-node point
}

// nameRecordWidth is the fixed record width of MED group name datasets.
const nameRecordWidth = 80

type physicalName struct {
	Dimension int
	Tag       int
	Name      string
}

type gmshReader struct {
	msh       *Mesh
	nodeIndex map[int]int      // Gmsh node ID -> 0-based point index
	blockOf   map[CellType]int // cell type -> block index
	tags      [][]int          // per-block family tags, parallel to CellBlocks
	phys      []physicalName
}

// ReadGmsh22 reads a Gmsh MSH file format version 2.2 (ASCII)
func ReadGmsh22(filename string) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	r := &gmshReader{
		msh:       NewMesh(),
		nodeIndex: make(map[int]int),
		blockOf:   make(map[CellType]int),
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case "$MeshFormat":
			if err := r.readMeshFormat(scanner); err != nil {
				return nil, err
			}

		case "$PhysicalNames":
			if err := r.readPhysicalNames(scanner); err != nil {
				return nil, err
			}

		case "$Nodes":
			if err := r.readNodes(scanner); err != nil {
				return nil, err
			}

		case "$Elements":
			if err := r.readElements(scanner); err != nil {
				return nil, err
			}

		case "$NodeData", "$ElementData", "$ElementNodeData", "$Periodic":
			// Skip data sections
			endMarker := "$End" + line[1:]
			for scanner.Scan() {
				if strings.TrimSpace(scanner.Text()) == endMarker {
					break
				}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %v", err)
	}

	if len(r.msh.CellBlocks) > 0 {
		r.msh.CellData["gmsh:physical"] = r.tags
	}
	if len(r.phys) > 0 {
		r.msh.Meta = buildFamilyMeta(r.msh.MeshName, r.phys)
	}
	return r.msh, nil
}

// readMeshFormat reads the MeshFormat section
func (r *gmshReader) readMeshFormat(scanner *bufio.Scanner) error {
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF in MeshFormat")
	}

	parts := strings.Fields(scanner.Text())
	if len(parts) < 3 {
		return fmt.Errorf("invalid MeshFormat line")
	}
	r.msh.FormatVersion = parts[0]
	if !strings.HasPrefix(r.msh.FormatVersion, "2") {
		return fmt.Errorf("unsupported Gmsh version: %s", r.msh.FormatVersion)
	}
	if fileType, _ := strconv.Atoi(parts[1]); fileType == 1 {
		return fmt.Errorf("binary Gmsh files are not supported")
	}

	// Skip to end
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == "$EndMeshFormat" {
			break
		}
	}
	return nil
}

// readPhysicalNames reads physical group names
func (r *gmshReader) readPhysicalNames(scanner *bufio.Scanner) error {
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF in PhysicalNames")
	}

	numNames, _ := strconv.Atoi(strings.TrimSpace(scanner.Text()))

	for i := 0; i < numNames; i++ {
		if !scanner.Scan() {
			return fmt.Errorf("unexpected EOF reading physical names")
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) >= 3 {
			dimension, _ := strconv.Atoi(parts[0])
			tag, _ := strconv.Atoi(parts[1])
			name := strings.Trim(parts[2], "\"")

			// Join remaining parts if name contains spaces
			for j := 3; j < len(parts); j++ {
				name += " " + strings.Trim(parts[j], "\"")
			}

			r.phys = append(r.phys, physicalName{
				Dimension: dimension,
				Tag:       tag,
				Name:      name,
			})
		}
	}

	// Skip to end
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == "$EndPhysicalNames" {
			break
		}
	}
	return nil
}

// readNodes reads the Nodes section
func (r *gmshReader) readNodes(scanner *bufio.Scanner) error {
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF in Nodes")
	}

	numNodes, _ := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	r.msh.Points = make([][]float64, 0, numNodes)

	for i := 0; i < numNodes; i++ {
		if !scanner.Scan() {
			return fmt.Errorf("unexpected EOF reading nodes")
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) < 4 {
			return fmt.Errorf("invalid node line: %s", scanner.Text())
		}

		nodeID, _ := strconv.Atoi(parts[0])
		x, _ := strconv.ParseFloat(parts[1], 64)
		y, _ := strconv.ParseFloat(parts[2], 64)
		z, _ := strconv.ParseFloat(parts[3], 64)

		r.nodeIndex[nodeID] = len(r.msh.Points)
		r.msh.Points = append(r.msh.Points, []float64{x, y, z})
	}

	// Skip to end
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == "$EndNodes" {
			break
		}
	}
	return nil
}

// readElements reads the Elements section, grouping cells into blocks by
// type in order of first appearance and recording each cell's physical
// tag as its family id.
func (r *gmshReader) readElements(scanner *bufio.Scanner) error {
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF in Elements")
	}

	numElements, _ := strconv.Atoi(strings.TrimSpace(scanner.Text()))

	for i := 0; i < numElements; i++ {
		if !scanner.Scan() {
			return fmt.Errorf("unexpected EOF reading elements")
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) < 5 {
			return fmt.Errorf("invalid element line")
		}

		elemID, _ := strconv.Atoi(parts[0])
		elemType, _ := strconv.Atoi(parts[1])
		numTags, _ := strconv.Atoi(parts[2])

		if len(parts) < 3+numTags {
			return fmt.Errorf("invalid element tags")
		}

		ctype, ok := gmshCellType[elemType]
		if !ok {
			// Skip unknown element types
			continue
		}

		var physicalTag int
		if numTags > 0 {
			physicalTag, _ = strconv.Atoi(parts[3])
		}

		expectedNodes := ctype.NumNodes()
		nodeStart := 3 + numTags
		if len(parts) < nodeStart+expectedNodes {
			return fmt.Errorf("element %d: expected %d nodes, got %d",
				elemID, expectedNodes, len(parts)-nodeStart)
		}

		conn := make([]int, expectedNodes)
		for j := 0; j < expectedNodes; j++ {
			nodeID, _ := strconv.Atoi(parts[nodeStart+j])
			idx, ok := r.nodeIndex[nodeID]
			if !ok {
				return fmt.Errorf("element %d references unknown node %d", elemID, nodeID)
			}
			conn[j] = idx
		}

		r.addCell(ctype, conn, physicalTag)
	}

	// Skip to end
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == "$EndElements" {
			break
		}
	}
	return nil
}

func (r *gmshReader) addCell(ctype CellType, conn []int, tag int) {
	bi, ok := r.blockOf[ctype]
	if !ok {
		bi = len(r.msh.CellBlocks)
		r.blockOf[ctype] = bi
		r.msh.CellBlocks = append(r.msh.CellBlocks, CellBlock{Type: ctype})
		r.tags = append(r.tags, nil)
	}
	r.msh.CellBlocks[bi].Conn = append(r.msh.CellBlocks[bi].Conn, conn)
	r.tags[bi] = append(r.tags[bi], tag)
}

// buildFamilyMeta lays the physical names out as a MED-style family
// metadata tree: FAS/<mesh>/ELEME/FAM_<id>_<seq>/GRO/NOM with one fixed
// width character-code record per family.
func buildFamilyMeta(meshName string, phys []physicalName) *MetaGroup {
	root := NewMetaGroup()
	eleme := root.Ensure("FAS/" + meshName + "/ELEME")
	for seq, p := range phys {
		fam := eleme.Ensure(fmt.Sprintf("FAM_%d_%d", p.Tag, seq+1))
		nom := fam.Ensure("GRO/NOM")

		record := make([]byte, nameRecordWidth)
		copy(record, p.Name)
		nom.Records = append(nom.Records, record)
	}
	return root
}

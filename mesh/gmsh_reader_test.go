package mesh

import (
	"os"
	"path/filepath"
	"testing"
)

// Helper function to create temporary test files
func createTempMshFile(t *testing.T, content string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "test.msh")
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}

// TestReadGmsh22Nodes tests node reading with arbitrary IDs
func TestReadGmsh22Nodes(t *testing.T) {
	content := `$MeshFormat
2.2 0 8
$EndMeshFormat
$Nodes
3
10 0.0 0.0 0.0
25 1.0 0.0 0.0
30 1.0 1.0 0.5
$EndNodes
$Elements
0
$EndElements`

	msh, err := ReadGmsh22(createTempMshFile(t, content))
	if err != nil {
		t.Fatalf("Failed to read Gmsh file: %v", err)
	}

	if msh.NumPoints() != 3 {
		t.Errorf("Expected 3 points, got %d", msh.NumPoints())
	}
	if msh.Points[2][2] != 0.5 {
		t.Errorf("Expected z=0.5 for third point, got %v", msh.Points[2][2])
	}
	if msh.Meta != nil {
		t.Error("Expected no family metadata without $PhysicalNames")
	}
}

// TestReadGmsh22Blocks tests cell block grouping by type in order of
// first appearance, with per-block physical tags
func TestReadGmsh22Blocks(t *testing.T) {
	content := `$MeshFormat
2.2 0 8
$EndMeshFormat
$Nodes
5
1 0.0 0.0 0.0
2 1.0 0.0 0.0
3 0.0 1.0 0.0
4 0.0 0.0 1.0
5 1.0 1.0 1.0
$EndNodes
$Elements
4
1 2 2 9 1 1 2 3
2 4 2 7 1 1 2 3 4
3 4 2 7 1 2 3 4 5
4 2 2 9 1 2 3 5
$EndElements`

	msh, err := ReadGmsh22(createTempMshFile(t, content))
	if err != nil {
		t.Fatalf("Failed to read Gmsh file: %v", err)
	}

	if len(msh.CellBlocks) != 2 {
		t.Fatalf("Expected 2 cell blocks, got %d", len(msh.CellBlocks))
	}
	if msh.CellBlocks[0].Type != Triangle {
		t.Errorf("Expected first block Triangle, got %s", msh.CellBlocks[0].Type)
	}
	if msh.CellBlocks[1].Type != Tet {
		t.Errorf("Expected second block Tet, got %s", msh.CellBlocks[1].Type)
	}
	if len(msh.CellBlocks[1].Conn) != 2 {
		t.Fatalf("Expected 2 tets, got %d", len(msh.CellBlocks[1].Conn))
	}

	// Connectivity is 0-based
	conn := msh.CellBlocks[1].Conn[0]
	for i, want := range []int{0, 1, 2, 3} {
		if conn[i] != want {
			t.Errorf("Tet 0 node %d: expected %d, got %d", i, want, conn[i])
		}
	}

	tags, ok := msh.CellData["gmsh:physical"]
	if !ok {
		t.Fatal("Expected gmsh:physical cell data")
	}
	if len(tags) != 2 || len(tags[1]) != 2 {
		t.Fatalf("Expected per-block tag arrays, got %v", tags)
	}
	if tags[1][0] != 7 || tags[1][1] != 7 {
		t.Errorf("Expected tet tags [7 7], got %v", tags[1])
	}
	if tags[0][0] != 9 {
		t.Errorf("Expected triangle tag 9, got %d", tags[0][0])
	}
}

// TestReadGmsh22PhysicalNames tests family metadata synthesis
func TestReadGmsh22PhysicalNames(t *testing.T) {
	content := `$MeshFormat
2.2 0 8
$EndMeshFormat
$PhysicalNames
2
3 7 "VOLUME1"
2 9 "FACE SUP"
$EndPhysicalNames
$Nodes
0
$EndNodes
$Elements
0
$EndElements`

	msh, err := ReadGmsh22(createTempMshFile(t, content))
	if err != nil {
		t.Fatalf("Failed to read Gmsh file: %v", err)
	}

	names := FamilyNames(msh)
	if len(names) != 2 {
		t.Fatalf("Expected 2 families, got %d", len(names))
	}
	if names[7] != "VOLUME1" {
		t.Errorf("Expected family 7 = VOLUME1, got %q", names[7])
	}
	// Names with spaces survive the fixed-width round trip
	if names[9] != "FACE SUP" {
		t.Errorf("Expected family 9 = 'FACE SUP', got %q", names[9])
	}
}

// TestReadGmsh22Unsupported tests rejection of non-2.x and binary files
func TestReadGmsh22Unsupported(t *testing.T) {
	content := `$MeshFormat
4.1 0 8
$EndMeshFormat`
	if _, err := ReadGmsh22(createTempMshFile(t, content)); err == nil {
		t.Error("Expected error for Gmsh 4.1 file")
	}

	content = `$MeshFormat
2.2 1 8
$EndMeshFormat`
	if _, err := ReadGmsh22(createTempMshFile(t, content)); err == nil {
		t.Error("Expected error for binary file")
	}
}

// TestReadMeshFileDispatch tests extension dispatch
func TestReadMeshFileDispatch(t *testing.T) {
	if _, err := ReadMeshFile("case.med"); err == nil {
		t.Error("Expected unsupported-format error for .med")
	}
}

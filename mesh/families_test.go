package mesh

import (
	"testing"
)

func famRecord(name string) []byte {
	record := make([]byte, nameRecordWidth)
	copy(record, name)
	return record
}

// TestFamilyNames tests decoding of the family metadata tree
func TestFamilyNames(t *testing.T) {
	msh := NewMesh()
	msh.Meta = NewMetaGroup()
	eleme := msh.Meta.Ensure("FAS/Mesh_1/ELEME")

	eleme.Ensure("FAM_7_1/GRO/NOM").Records = [][]byte{famRecord("VOLUME1")}
	eleme.Ensure("FAM_-2_2/GRO/NOM").Records = [][]byte{famRecord("  BASE  ")}
	// Children that do not match the family pattern are ignored
	eleme.Ensure("FAMILLE_ZERO")

	names := FamilyNames(msh)
	if len(names) != 2 {
		t.Fatalf("Expected 2 families, got %d: %v", len(names), names)
	}
	if names[7] != "VOLUME1" {
		t.Errorf("Expected family 7 = VOLUME1, got %q", names[7])
	}
	// Negative ids are valid; whitespace is trimmed after NUL stripping
	if names[-2] != "BASE" {
		t.Errorf("Expected family -2 = BASE, got %q", names[-2])
	}
}

// TestFamilyNamesAbsentMetadata tests that a mesh without named groups
// yields an empty map, not an error
func TestFamilyNamesAbsentMetadata(t *testing.T) {
	msh := NewMesh()
	if names := FamilyNames(msh); len(names) != 0 {
		t.Errorf("Expected empty map for nil metadata, got %v", names)
	}

	msh.Meta = NewMetaGroup()
	if names := FamilyNames(msh); len(names) != 0 {
		t.Errorf("Expected empty map without FAS group, got %v", names)
	}
}

// TestFamilyNamesDuplicateID tests last-read-wins on duplicate ids
func TestFamilyNamesDuplicateID(t *testing.T) {
	msh := NewMesh()
	msh.Meta = NewMetaGroup()
	eleme := msh.Meta.Ensure("FAS/Mesh_1/ELEME")
	eleme.Ensure("FAM_5_1/GRO/NOM").Records = [][]byte{famRecord("FIRST")}
	eleme.Ensure("FAM_5_2/GRO/NOM").Records = [][]byte{famRecord("SECOND")}

	names := FamilyNames(msh)
	if names[5] != "SECOND" {
		t.Errorf("Expected last read to win, got %q", names[5])
	}
}

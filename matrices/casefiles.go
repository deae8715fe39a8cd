// Package matrices fuses parsed materials, group assignments and raw
// mesh connectivity into the node, element and material matrices handed
// to solver code.
package matrices

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// ErrMissingDir reports a nonexistent input directory.
	ErrMissingDir = errors.New("input directory does not exist")
	// ErrNoCommFile reports a case directory without a command script.
	ErrNoCommFile = errors.New("no .comm files found")
	// ErrNoMeshFile reports a case directory without a mesh file.
	ErrNoMeshFile = errors.New("no mesh files found")
)

// meshExtensions lists the mesh formats the readers handle.
var meshExtensions = []string{".msh"}

// LocateCaseFiles finds the case's command script and mesh file in dir.
// Policy: the first match of each kind in sorted filename order wins.
func LocateCaseFiles(dir string) (commPath, meshPath string, err error) {
	info, statErr := os.Stat(dir)
	if statErr != nil || !info.IsDir() {
		return "", "", fmt.Errorf("%w: '%s'", ErrMissingDir, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", "", err
	}

	var commFiles, meshFiles []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		switch {
		case ext == ".comm":
			commFiles = append(commFiles, name)
		case hasMeshExtension(ext):
			meshFiles = append(meshFiles, name)
		}
	}
	sort.Strings(commFiles)
	sort.Strings(meshFiles)

	if len(commFiles) == 0 {
		return "", "", fmt.Errorf("%w inside '%s'", ErrNoCommFile, dir)
	}
	if len(meshFiles) == 0 {
		return "", "", fmt.Errorf("%w inside '%s'", ErrNoMeshFile, dir)
	}

	return filepath.Join(dir, commFiles[0]), filepath.Join(dir, meshFiles[0]), nil
}

func hasMeshExtension(ext string) bool {
	for _, e := range meshExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

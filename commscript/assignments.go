package commscript

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNoAssignments reports an AFFE_MATERIAU statement that binds no group
// to any material.
var ErrNoAssignments = errors.New("no GROUP_MA to MATER assignments found in AFFE_MATERIAU")

const affeMateriau = "AFFE_MATERIAU"

var (
	quotedName = regexp.MustCompile(`'([^']+)'`)
	bareIdent  = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)
)

// ParseGroupAssignments maps mesh group names to material names from the
// case's single AFFE_MATERIAU statement. Each AFFE=_F(...) sub-block
// contributes every group of its GROUP_MA list; a group assigned twice
// keeps the later assignment.
func ParseGroupAssignments(text string) (map[string]string, error) {
	body, err := ExtractFunctionBody(text, affeMateriau)
	if err != nil {
		return nil, err
	}
	blocks, err := ExtractBlocks(body, "_F")
	if err != nil {
		return nil, err
	}

	mapping := make(map[string]string)
	for _, block := range blocks {
		if !strings.Contains(block, "GROUP_MA") || !strings.Contains(block, "MATER") {
			continue
		}

		groups, ok := parenthesizedList(block, "GROUP_MA")
		if !ok {
			continue
		}
		mater, ok := parenthesizedList(block, "MATER")
		if !ok {
			continue
		}

		groupNames := quotedName.FindAllStringSubmatch(groups, -1)
		materName := bareIdent.FindString(mater)
		if len(groupNames) == 0 || materName == "" {
			continue
		}
		for _, g := range groupNames {
			mapping[g[1]] = materName
		}
	}

	if len(mapping) == 0 {
		return nil, ErrNoAssignments
	}
	return mapping, nil
}

// parenthesizedList returns the inner text of the parenthesized list
// assigned to key, e.g. GROUP_MA=('A', 'B') yields "'A', 'B'".
func parenthesizedList(block, key string) (string, bool) {
	value, found := keywordValue(block, key)
	if !found || !strings.HasPrefix(value, "(") {
		return "", false
	}
	inner, _, err := scanBalanced(value, 1)
	if err != nil {
		return "", false
	}
	return inner, true
}

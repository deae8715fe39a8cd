package commscript

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNoMaterials reports that the command text contains no usable
// DEFI_MATERIAU statement.
var ErrNoMaterials = errors.New("no DEFI_MATERIAU blocks found in command text")

// Material is one parsed material definition. The position in the slice
// returned by ParseMaterials defines the 1-based material row index used
// by the element matrix.
type Material struct {
	Name string
	E    float64 // Young's modulus
	Nu   float64 // Poisson ratio
}

const defiMaterial = "DEFI_MATERIAU"

// ParseMaterials extracts every statement of the form
//
//	NAME = DEFI_MATERIAU(ELAS=_F(E=<float>, NU=<float>))
//
// in order of appearance. Whitespace and line breaks between tokens are
// insignificant. Occurrences that do not carry an elastic _F block with
// both E and NU are skipped, matching the shape the downstream matrices
// consume.
func ParseMaterials(text string) ([]Material, error) {
	var (
		materials []Material
		target    = defiMaterial + "("
		pos       = 0
	)
	for {
		start := strings.Index(text[pos:], target)
		if start == -1 {
			break
		}
		start += pos

		body, next, err := scanBalanced(text, start+len(target))
		if err != nil {
			return nil, fmt.Errorf("while parsing %s: %w", defiMaterial, err)
		}
		pos = next

		name, ok := identifierBefore(text, start)
		if !ok {
			continue
		}
		m, ok := parseElastic(body)
		if !ok {
			continue
		}
		m.Name = name
		materials = append(materials, m)
	}

	if len(materials) == 0 {
		return nil, ErrNoMaterials
	}
	return materials, nil
}

// parseElastic pulls E and NU out of the ELAS=_F(...) keyword of a
// DEFI_MATERIAU body.
func parseElastic(body string) (m Material, ok bool) {
	elas, found := keywordValue(body, "ELAS")
	if !found {
		return
	}
	inner, err := ExtractFunctionBody(elas, "_F")
	if err != nil {
		return
	}

	eStr, okE := keywordValue(inner, "E")
	nuStr, okNu := keywordValue(inner, "NU")
	if !okE || !okNu {
		return
	}
	e, errE := strconv.ParseFloat(strings.TrimSpace(eStr), 64)
	nu, errNu := strconv.ParseFloat(strings.TrimSpace(nuStr), 64)
	if errE != nil || errNu != nil {
		return
	}
	return Material{E: e, Nu: nu}, true
}

// keywordValue returns the value of KEY in a comma separated KEY=VALUE
// keyword list, splitting only at depth zero so parenthesized values stay
// whole.
func keywordValue(body, key string) (string, bool) {
	for _, part := range splitTopLevel(body, ',') {
		k, v, found := strings.Cut(part, "=")
		if !found {
			continue
		}
		if strings.TrimSpace(k) == key {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}

// splitTopLevel splits on sep occurrences outside any parentheses.
func splitTopLevel(text string, sep byte) (parts []string) {
	var (
		depth = 0
		last  = 0
	)
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, text[last:i])
				last = i + 1
			}
		}
	}
	parts = append(parts, text[last:])
	return
}

// identifierBefore walks backwards from pos expecting "<ident> =" and
// returns the identifier.
func identifierBefore(text string, pos int) (string, bool) {
	i := pos - 1
	for i >= 0 && isSpace(text[i]) {
		i--
	}
	if i < 0 || text[i] != '=' {
		return "", false
	}
	i--
	for i >= 0 && isSpace(text[i]) {
		i--
	}
	end := i + 1
	for i >= 0 && isIdentChar(text[i]) {
		i--
	}
	name := text[i+1 : end]
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		return "", false
	}
	return name, true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdentChar(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

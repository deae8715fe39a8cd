// Package commscript parses the subset of the Code_Aster command language
// needed to recover material definitions and group-to-material assignments
// from a case's .comm file.
package commscript

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound reports that the requested function call does not appear
	// in the command text.
	ErrNotFound = errors.New("call not found in command text")
	// ErrUnbalanced reports that end of text was reached with open
	// parentheses still pending.
	ErrUnbalanced = errors.New("unbalanced parentheses")
)

// ExtractFunctionBody returns the text inside the first funcName(...) call,
// exclusive of the outer parentheses. Nested parenthesized sub-expressions
// are kept intact via an explicit depth counter.
func ExtractFunctionBody(text, funcName string) (string, error) {
	target := funcName + "("
	start := strings.Index(text, target)
	if start == -1 {
		return "", fmt.Errorf("%w: %s", ErrNotFound, funcName)
	}

	body, _, err := scanBalanced(text, start+len(target))
	if err != nil {
		return "", fmt.Errorf("while parsing %s: %w", funcName, err)
	}
	return body, nil
}

// ExtractBlocks returns the balanced body of every occurrence of
// marker(...) in order of appearance. The marker is a literal prefix
// ending just before the opening paren, e.g. "_F" for Code_Aster keyword
// factories. A text without any occurrence yields an empty slice.
func ExtractBlocks(text, marker string) ([]string, error) {
	var (
		blocks []string
		target = marker + "("
		pos    = 0
	)
	for {
		start := strings.Index(text[pos:], target)
		if start == -1 {
			break
		}
		body, next, err := scanBalanced(text, pos+start+len(target))
		if err != nil {
			return nil, fmt.Errorf("while parsing %s block %d: %w", marker, len(blocks), err)
		}
		blocks = append(blocks, body)
		pos = next
	}
	return blocks, nil
}

// scanBalanced consumes text from idx, which must point just past an
// opening paren, until the matching close. It returns the enclosed text
// and the index of the first character after the closing paren.
func scanBalanced(text string, idx int) (string, int, error) {
	var (
		depth = 1
		body  strings.Builder
	)
	for idx < len(text) && depth > 0 {
		c := text[idx]
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth > 0 {
			body.WriteByte(c)
		}
		idx++
	}
	if depth != 0 {
		return "", idx, ErrUnbalanced
	}
	return body.String(), idx, nil
}

// SPDX-License-Identifier: MIT

// Package notation reads and writes the textual forms of structures:
//
//	nested   "[[1,2],[3,4]]"   tensors, matrices, vectors (a bare token is rank 0)
//	tuple    "1:2:3"           tuples
//
// It only splits text into element tokens and recovers the shape; turning a
// token into a value is the scalar algebra's job (Algebra.Parse/Format).
// Commas inside parentheses belong to the token, so "[(1,2),(3,4)]" holds
// two complex tokens.
package notation

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvalg"
	"github.com/katalvlaran/lvalg/shape"
)

var (
	// ErrSyntax reports malformed bracket text.
	ErrSyntax = lvalg.Mark("notation: syntax error", lvalg.ErrParse)

	// ErrRagged reports sibling lists of different lengths or depths.
	ErrRagged = lvalg.Mark("notation: ragged nesting", lvalg.ErrParse, lvalg.ErrInvalidArgument)
)

const panicTokenCount = "notation: token count does not match shape"

type parser struct {
	src string
	pos int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }

func (p *parser) fail(what string) error {
	return errors.Wrapf(ErrSyntax, "%s at offset %d in %q", what, p.pos, p.src)
}

// value parses a list or a token and returns its shape and leaves.
func (p *parser) value() (shape.Shape, []string, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, nil, p.fail("unexpected end")
	}
	if p.src[p.pos] == '[' {
		return p.list()
	}
	tok, err := p.token()
	if err != nil {
		return nil, nil, err
	}
	return shape.Shape{}, []string{tok}, nil
}

func (p *parser) list() (shape.Shape, []string, error) {
	start := p.pos
	p.pos++ // '['
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == ']' {
		p.pos++
		return shape.Shape{0}, nil, nil
	}

	var (
		child  shape.Shape
		leaves []string
		n      int
	)
	for {
		s, l, err := p.value()
		if err != nil {
			return nil, nil, err
		}
		if n > 0 && !s.Equal(child) {
			return nil, nil, errors.Wrapf(ErrRagged, "element %d has shape %v, expected %v (list at offset %d)", n, s, child, start)
		}
		child = s
		leaves = append(leaves, l...)
		n++

		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, nil, p.fail("missing ']'")
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return append(shape.Shape{n}, child...), leaves, nil
		default:
			return nil, nil, p.fail("expected ',' or ']'")
		}
	}
}

// token reads up to a top-level ',' or ']'.
func (p *parser) token() (string, error) {
	start, depth := p.pos, 0
loop:
	for ; p.pos < len(p.src); p.pos++ {
		switch p.src[p.pos] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return "", p.fail("unbalanced ')'")
			}
		case '[':
			return "", p.fail("unexpected '['")
		case ',', ']':
			if depth == 0 {
				break loop
			}
		}
	}
	if depth != 0 {
		return "", p.fail("unbalanced '('")
	}
	tok := strings.TrimSpace(p.src[start:p.pos])
	if tok == "" {
		return "", p.fail("empty element")
	}
	return tok, nil
}

// ParseNested splits bracketed text into its shape and row-major element
// tokens. "[]" has shape (0); a bare token has rank 0.
func ParseNested(s string) (shape.Shape, []string, error) {
	p := &parser{src: s}
	dims, leaves, err := p.value()
	if err != nil {
		return nil, nil, err
	}
	p.skipSpace()
	if p.pos != len(s) {
		return nil, nil, p.fail("trailing text")
	}
	return dims, leaves, nil
}

// FormatNested is the inverse of ParseNested. len(tokens) must equal
// dims.NumElements().
func FormatNested(dims shape.Shape, tokens []string) string {
	if len(tokens) != dims.NumElements() {
		panic(panicTokenCount)
	}
	var sb strings.Builder
	writeNested(&sb, dims, tokens)
	return sb.String()
}

func writeNested(sb *strings.Builder, dims shape.Shape, tokens []string) {
	if len(dims) == 0 {
		sb.WriteString(tokens[0])
		return
	}
	sb.WriteByte('[')
	step := shape.Shape(dims[1:]).NumElements()
	for i := 0; i < dims[0]; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		writeNested(sb, dims[1:], tokens[i*step:(i+1)*step])
	}
	sb.WriteByte(']')
}

// ParseTuple splits "a:b:c" into its component tokens.
func ParseTuple(s string) ([]string, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
		if parts[i] == "" {
			return nil, errors.Wrapf(ErrSyntax, "empty tuple component %d in %q", i, s)
		}
	}
	return parts, nil
}

// FormatTuple joins component tokens with ':'.
func FormatTuple(tokens []string) string { return strings.Join(tokens, ":") }

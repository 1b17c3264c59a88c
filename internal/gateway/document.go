package gateway

import (
	"fmt"
	"strings"
	"unicode"
)

// The service accepts the usual {"query": ..., "variables": ...} envelope
// but resolves operations by name: the document is scanned for its
// top-level selection fields and every argument is read from the variables
// map. Selection sets below the top level only shape what clients read
// from the returned objects, so they are skipped rather than interpreted.

type document struct {
	// Mutation is true for a mutation document, false for a query.
	Mutation bool
	// Fields are the top-level selection field names, in document order.
	Fields []string
}

// parseDocument extracts the operation type and top-level field names from
// a query/mutation document.
func parseDocument(raw string) (*document, error) {
	s := newScanner(raw)

	s.skipIgnored()
	if s.done() {
		return nil, fmt.Errorf("empty operation document")
	}

	doc := &document{}

	// Optional operation keyword, operation name and variable definitions.
	if s.peek() != '{' {
		keyword := s.readName()
		switch keyword {
		case "query":
			// default
		case "mutation":
			doc.Mutation = true
		case "subscription":
			return nil, fmt.Errorf("subscriptions are not supported")
		case "":
			return nil, fmt.Errorf("malformed operation document")
		default:
			return nil, fmt.Errorf("unknown operation type %q", keyword)
		}
		s.skipIgnored()
		// operation name
		if s.peekIsNameStart() {
			s.readName()
			s.skipIgnored()
		}
		// variable definitions
		if s.peek() == '(' {
			if err := s.skipBalanced('(', ')'); err != nil {
				return nil, err
			}
			s.skipIgnored()
		}
	}

	if s.peek() != '{' {
		return nil, fmt.Errorf("expected selection set")
	}
	s.next() // consume '{'

	for {
		s.skipIgnored()
		if s.done() {
			return nil, fmt.Errorf("unterminated selection set")
		}
		if s.peek() == '}' {
			break
		}

		name := s.readName()
		if name == "" {
			return nil, fmt.Errorf("expected field name at offset %d", s.pos)
		}
		s.skipIgnored()

		// alias: the name was the response key; the field follows.
		if s.peek() == ':' {
			s.next()
			s.skipIgnored()
			name = s.readName()
			if name == "" {
				return nil, fmt.Errorf("expected field name after alias")
			}
			s.skipIgnored()
		}

		// arguments: values come from the variables map instead.
		if s.peek() == '(' {
			if err := s.skipBalanced('(', ')'); err != nil {
				return nil, err
			}
			s.skipIgnored()
		}

		// nested selection set: shape-only, skipped.
		if s.peek() == '{' {
			if err := s.skipBalanced('{', '}'); err != nil {
				return nil, err
			}
		}

		doc.Fields = append(doc.Fields, name)
	}

	if len(doc.Fields) == 0 {
		return nil, fmt.Errorf("operation document selects no fields")
	}
	return doc, nil
}

type scanner struct {
	src []rune
	pos int
}

func newScanner(src string) *scanner {
	return &scanner{src: []rune(src)}
}

func (s *scanner) done() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() rune {
	if s.done() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) next() rune {
	r := s.peek()
	s.pos++
	return r
}

// skipIgnored advances past whitespace, commas and # comments.
func (s *scanner) skipIgnored() {
	for !s.done() {
		r := s.peek()
		switch {
		case unicode.IsSpace(r) || r == ',':
			s.pos++
		case r == '#':
			for !s.done() && s.peek() != '\n' {
				s.pos++
			}
		default:
			return
		}
	}
}

func (s *scanner) peekIsNameStart() bool {
	r := s.peek()
	return r == '_' || unicode.IsLetter(r)
}

func (s *scanner) readName() string {
	var b strings.Builder
	for !s.done() {
		r := s.peek()
		if r == '_' || unicode.IsLetter(r) || (b.Len() > 0 && unicode.IsDigit(r)) {
			b.WriteRune(r)
			s.pos++
			continue
		}
		break
	}
	return b.String()
}

// skipBalanced consumes a balanced open..close run, honoring string
// literals so braces inside them do not count.
func (s *scanner) skipBalanced(open, close rune) error {
	if s.peek() != open {
		return fmt.Errorf("expected %q at offset %d", open, s.pos)
	}
	depth := 0
	for !s.done() {
		r := s.next()
		switch r {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return nil
			}
		case '"':
			for !s.done() {
				c := s.next()
				if c == '\\' {
					s.next()
					continue
				}
				if c == '"' {
					break
				}
			}
		}
	}
	return fmt.Errorf("unbalanced %q in operation document", open)
}

package latex

import (
	"errors"
	"regexp"
	"strings"
)

var whitespaces = regexp.MustCompile("[ \n\t\r]+")

// KeyValue parses key-value parameters in this format: key=value, key=value,
// for example definitions passed on command line: "sgn=sgn, xor=⊻".
//
// Values may be quoted with double or single quotes to keep commas and
// surrounding spaces, a backslash escapes the quote inside. Parts without a
// key or without "=" are ignored.
func KeyValue(raw string) (map[string]string, error) {
	kv := map[string]string{}

	s := &kvScanner{src: raw}
	for !s.done() {
		key := strings.TrimSpace(s.until("=,"))
		if s.done() || s.peek() == ',' {
			s.skip(',')
			continue
		}

		s.skip('=')

		value, err := s.value()
		if err != nil {
			return nil, err
		}

		if key != "" {
			kv[key] = value
		}
	}

	return kv, nil
}

type kvScanner struct {
	src string
	pos int
}

func (s *kvScanner) done() bool {
	return s.pos >= len(s.src)
}

func (s *kvScanner) peek() byte {
	return s.src[s.pos]
}

func (s *kvScanner) skip(c byte) {
	if !s.done() && s.peek() == c {
		s.pos++
	}
}

func (s *kvScanner) spaces() {
	for !s.done() && isWhitespace(rune(s.peek())) {
		s.pos++
	}
}

// until reads up to one of the stop characters
func (s *kvScanner) until(stop string) string {
	start := s.pos
	for !s.done() && strings.IndexByte(stop, s.peek()) < 0 {
		s.pos++
	}

	return s.src[start:s.pos]
}

// value reads a bare or a quoted value and the comma after it
func (s *kvScanner) value() (string, error) {
	s.spaces()

	if s.done() || s.peek() != '"' && s.peek() != '\'' {
		value := strings.TrimSpace(s.until(","))
		s.skip(',')
		return value, nil
	}

	quote := s.peek()
	s.pos++

	var value strings.Builder
	for {
		if s.done() {
			return "", errors.New("quoted value is not terminated")
		}

		c := s.peek()
		s.pos++

		if c == '\\' && !s.done() && (s.peek() == quote || s.peek() == '\\') {
			c = s.peek()
			s.pos++
		} else if c == quote {
			break
		}

		value.WriteByte(c)
	}

	// anything between closing quote and the next comma is ignored
	s.until(",")
	s.skip(',')

	return value.String(), nil
}

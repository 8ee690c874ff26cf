package driver

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"alloy/internal/annotations"
	"alloy/internal/foreign"
	"alloy/internal/qualifiers"
)

// Entry is one parsed listing line: a foreign type reference plus its
// annotations and explicit qualifier bindings.
//
// Line grammar:
//
//	[@Annotation ...] <foreign type> [where IDX:FLAGS ...]
//
// `#` starts a comment; blank lines are skipped.
type Entry struct {
	Line   int
	Source string
	Type   *foreign.Node
	Anns   annotations.Set
	Quals  qualifiers.Table
}

// ParseListing reads a signature listing stream.
func ParseListing(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		entry, err := parseEntry(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		entry.Line = lineNo
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func parseEntry(line string) (Entry, error) {
	entry := Entry{Source: line}

	// Leading @tokens are the reference's annotations.
	rest := line
	var annText strings.Builder
	for strings.HasPrefix(rest, "@") {
		end := annotationEnd(rest)
		if end < 0 {
			return Entry{}, fmt.Errorf("entry %q: annotation without a type", line)
		}
		annText.WriteString(rest[:end])
		annText.WriteByte(' ')
		rest = strings.TrimSpace(rest[end:])
	}
	if annText.Len() > 0 {
		set, err := annotations.Parse(strings.TrimSpace(annText.String()))
		if err != nil {
			return Entry{}, err
		}
		entry.Anns = set
	}

	typeText := rest
	if at := strings.Index(rest, " where "); at >= 0 {
		typeText = rest[:at]
		table, err := qualifiers.ParseSpecs(strings.Fields(rest[at+len(" where "):]))
		if err != nil {
			return Entry{}, err
		}
		entry.Quals = table
	}

	node, err := foreign.Parse(strings.TrimSpace(typeText))
	if err != nil {
		return Entry{}, err
	}
	entry.Type = node
	return entry, nil
}

// annotationEnd finds the first space after an @token, skipping spaces
// inside an argument list. Returns -1 when nothing follows the token.
func annotationEnd(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ' ':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

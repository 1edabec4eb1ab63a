package dump

import (
	"fmt"
	"strings"
)

// Rows returns every data row found across all INSERT INTO `table` ...
// VALUES statements, in source order (statement order, then tuple order).
// Field counts are not checked against any schema here; mismatch handling
// is the Reconciler's job.
//
// On a malformed statement (an unterminated quoted string, a tuple cut off
// at end of input) the rows decoded up to that point are returned together
// with the error, so one bad statement degrades the table instead of
// discarding it.
func Rows(text, table string) ([]Row, error) {
	marker := "INSERT INTO `" + table + "`"

	var rows []Row
	for off := 0; ; {
		i := strings.Index(text[off:], marker)
		if i < 0 {
			return rows, nil
		}
		stmt := off + i + len(marker)

		v := strings.Index(text[stmt:], "VALUES")
		if v < 0 {
			return rows, nil
		}
		body := stmt + v + len("VALUES")

		s := &valueScanner{input: text, pos: body}
		stmtRows, err := s.scanStatement()
		rows = append(rows, stmtRows...)
		if err != nil {
			return rows, fmt.Errorf("table %q: %w", table, err)
		}
		off = s.pos
	}
}

// valueScanner walks the VALUES clause of one INSERT statement. It is a
// single forward pass over the input with three states: between tuples,
// inside a tuple, and inside a quoted string. Commas, parentheses and
// semicolons inside quoted strings never act as delimiters.
type valueScanner struct {
	input string
	pos   int
}

// scanStatement consumes tuples until the terminating semicolon. Characters
// between tuples (whitespace, the separating commas) are skipped. A missing
// terminator at end of input is tolerated; the tuples read so far stand.
func (s *valueScanner) scanStatement() ([]Row, error) {
	var rows []Row
	for s.pos < len(s.input) {
		switch s.input[s.pos] {
		case ';':
			s.pos++
			return rows, nil
		case '(':
			row, err := s.scanTuple()
			if len(row) > 0 {
				rows = append(rows, row)
			}
			if err != nil {
				return rows, err
			}
		default:
			s.pos++
		}
	}
	return rows, nil
}

// scanTuple reads one parenthesized tuple and splits it into fields at
// top-level commas. Quoted strings are consumed wholesale so embedded
// commas and parentheses stay inside their field.
func (s *valueScanner) scanTuple() (Row, error) {
	s.pos++ // consume '('

	var row Row
	var field strings.Builder
	for s.pos < len(s.input) {
		switch ch := s.input[s.pos]; ch {
		case '\'':
			raw, ok := s.readQuoted()
			field.WriteString(raw)
			if !ok {
				row = append(row, cleanField(field.String()))
				return row, fmt.Errorf("unterminated string in tuple")
			}
		case ',':
			row = append(row, cleanField(field.String()))
			field.Reset()
			s.pos++
		case ')':
			row = append(row, cleanField(field.String()))
			s.pos++
			return row, nil
		default:
			field.WriteByte(ch)
			s.pos++
		}
	}
	return row, fmt.Errorf("tuple not closed before end of input")
}

// readQuoted consumes a single-quoted string literal, quotes included, and
// returns it verbatim. Backslash escapes and doubled single quotes do not
// terminate the literal. ok is false when input ends before the closing
// quote.
func (s *valueScanner) readQuoted() (string, bool) {
	start := s.pos
	s.pos++ // opening quote
	for s.pos < len(s.input) {
		switch s.input[s.pos] {
		case '\\':
			s.pos += 2
		case '\'':
			if s.pos+1 < len(s.input) && s.input[s.pos+1] == '\'' {
				s.pos += 2 // doubled quote escape, stay inside the string
				continue
			}
			s.pos++
			return s.input[start:s.pos], true
		default:
			s.pos++
		}
	}
	return s.input[start:], false
}

// cleanField normalizes one raw field: surrounding whitespace is trimmed
// and a single layer of quotes is stripped. A bare NULL keyword or an empty
// unquoted field becomes the NULL marker; a quoted 'NULL' stays the literal
// text "NULL".
func cleanField(raw string) Value {
	raw = strings.TrimSpace(raw)
	if len(raw) >= 2 && raw[0] == '\'' && raw[len(raw)-1] == '\'' {
		return TextValue(raw[1 : len(raw)-1])
	}
	if raw == "" || raw == "NULL" {
		return NullValue()
	}
	return TextValue(raw)
}

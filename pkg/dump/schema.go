package dump

import "strings"

// Declarations inside a CREATE TABLE body that describe indexes or
// constraints rather than columns. Matched case-sensitively, as written by
// mysqldump.
var constraintPrefixes = []string{"PRIMARY KEY", "KEY", "CONSTRAINT", "UNIQUE"}

// Schema returns the column names declared in table's CREATE TABLE block,
// in declaration order. Duplicate names are preserved. The result is empty
// when the table has no CREATE TABLE block or no parseable columns; callers
// must treat empty as "schema unavailable", not as a zero-column table.
func Schema(text, table string) []string {
	body, ok := createBody(text, table)
	if !ok {
		return nil
	}

	var cols []string
	for _, decl := range splitDeclarations(body) {
		decl = strings.TrimSpace(decl)
		if decl == "" || isConstraintDecl(decl) {
			continue
		}
		name := strings.Trim(firstToken(decl), "`")
		if name == "" || isReservedWord(name) {
			continue
		}
		cols = append(cols, name)
	}
	return cols
}

// createBody returns the text between "CREATE TABLE `name` (" and the
// ") ENGINE=" terminator. The body spans newlines.
func createBody(text, table string) (string, bool) {
	marker := "CREATE TABLE `" + table + "` ("
	start := strings.Index(text, marker)
	if start < 0 {
		return "", false
	}
	body := text[start+len(marker):]
	end := strings.Index(body, ") ENGINE=")
	if end < 0 {
		return "", false
	}
	return body[:end], true
}

// splitDeclarations splits a CREATE TABLE body into its comma-separated
// declarations. Commas inside parentheses (type arguments, key column
// lists) or single-quoted literals (enum values, defaults) do not split.
func splitDeclarations(body string) []string {
	var decls []string
	depth := 0
	quoted := false
	start := 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '\'':
			quoted = !quoted
		case '(':
			if !quoted {
				depth++
			}
		case ')':
			if !quoted {
				depth--
			}
		case ',':
			if !quoted && depth == 0 {
				decls = append(decls, body[start:i])
				start = i + 1
			}
		}
	}
	return append(decls, body[start:])
}

func isConstraintDecl(decl string) bool {
	for _, p := range constraintPrefixes {
		if strings.HasPrefix(decl, p) {
			return true
		}
	}
	return false
}

func isReservedWord(name string) bool {
	switch name {
	case "PRIMARY", "KEY", "CONSTRAINT", "UNIQUE":
		return true
	}
	return false
}

// firstToken returns the first whitespace-delimited token of decl.
func firstToken(decl string) string {
	for i := 0; i < len(decl); i++ {
		if decl[i] == ' ' || decl[i] == '\t' || decl[i] == '\n' {
			return decl[:i]
		}
	}
	return decl
}

package dump

import (
	"regexp"
	"strings"
)

var (
	createTableRe = regexp.MustCompile("CREATE TABLE `(\\w+)` \\(")
	referencesRe  = regexp.MustCompile("REFERENCES\\s+`(\\w+)`\\s*\\(`(\\w+)`\\)")
	foreignKeyRe  = regexp.MustCompile("FOREIGN KEY\\s*\\(`(\\w+)`\\)")
)

// Relations scans every CREATE TABLE block for foreign key declarations and
// returns one link per declaration, in source order. Both shapes written by
// mysqldump are recognized:
//
//	`plan_id` int REFERENCES `plans`(`id`)                 (inline)
//	FOREIGN KEY (`plan_id`) REFERENCES `plans`(`id`)       (standalone)
//
// Declarations matching neither shape are skipped; extraction is
// best-effort and never fails.
func Relations(text string) []ForeignKey {
	var links []ForeignKey
	for _, loc := range createTableRe.FindAllStringSubmatchIndex(text, -1) {
		owner := text[loc[2]:loc[3]]
		body := text[loc[1]:]
		if end := strings.Index(body, ") ENGINE="); end >= 0 {
			body = body[:end]
		}
		links = append(links, tableRelations(owner, body)...)
	}
	return links
}

// tableRelations extracts the links declared inside one CREATE TABLE body.
func tableRelations(owner, body string) []ForeignKey {
	var links []ForeignKey
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, "REFERENCES") {
			continue
		}

		ref := referencesRe.FindStringSubmatch(line)
		if ref == nil {
			continue
		}

		var column string
		if fk := foreignKeyRe.FindStringSubmatch(line); fk != nil {
			// Standalone declaration: the local column sits in the
			// FOREIGN KEY (...) clause.
			column = fk[1]
		} else if strings.HasPrefix(line, "`") {
			// Inline declaration: the column being defined owns the link.
			column = strings.Trim(firstToken(line), "`")
		} else {
			continue
		}

		links = append(links, ForeignKey{
			Table:     owner,
			Column:    column,
			RefTable:  ref[1],
			RefColumn: ref[2],
		})
	}
	return links
}

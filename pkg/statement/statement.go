// Package statement classifies raw SQL text by its leading verb and extracts
// the target table identifier. It is not a SQL parser: only the leading verb
// and one table-name token are recognized, and nothing about the rest of the
// statement is validated.
package statement

import (
	"regexp"
	"strings"

	"sqlgate/pkg/apperr"
)

// Statement is one classified SQL statement, produced per request.
type Statement struct {
	Raw   string
	Verb  Verb
	Table string
}

// A dotted identifier token: letters, digits, underscore, with an optional
// schema qualifier.
const ident = `([A-Za-z_][A-Za-z0-9_]*(?:\.[A-Za-z_][A-Za-z0-9_]*)?)`

var leadingWord = regexp.MustCompile(`^[\s(]*([A-Za-z]+)`)

// Each verb anchors the table name at a different syntactic position, so a
// single generic "find a table-looking word" pattern would be ambiguous
// (UPDATE names the table immediately, SELECT only after FROM).
var (
	selectTable   = regexp.MustCompile(`(?is)\bselect\b.*?\bfrom\s+` + ident)
	insertTable   = regexp.MustCompile(`(?is)\binto\s+` + ident)
	updateTable   = regexp.MustCompile(`(?is)^\s*update\s+` + ident)
	deleteTable   = regexp.MustCompile(`(?is)\bdelete\s+from\s+` + ident)
	alterTable    = regexp.MustCompile(`(?is)\balter\s+table\s+` + ident)
	truncateTable = regexp.MustCompile(`(?is)\btruncate\s+table\s+` + ident)
	dropTable     = regexp.MustCompile(`(?is)\bdrop\s+table\s+` + ident)
)

func (v Verb) tablePattern() *regexp.Regexp {
	switch v {
	case VerbSelect:
		return selectTable
	case VerbInsert:
		return insertTable
	case VerbUpdate:
		return updateTable
	case VerbDelete:
		return deleteTable
	case VerbAlter:
		return alterTable
	case VerbTruncate:
		return truncateTable
	case VerbDrop:
		return dropTable
	}
	return nil
}

// Parse classifies raw SQL text. It fails with an unrecognized-statement
// error when the leading word is not one of the seven verbs, or when the
// verb's anchor pattern cannot locate a table name in the statement body.
func Parse(raw string) (Statement, error) {
	normalized := strings.ReplaceAll(raw, "\n", " ")

	word := leadingWord.FindStringSubmatch(normalized)
	if word == nil {
		return Statement{}, apperr.New(apperr.KindUnrecognizedStatement, "Could not get table name")
	}

	verb, err := VerbString(strings.ToLower(word[1]))
	if err != nil {
		return Statement{}, apperr.Wrap(apperr.KindUnrecognizedStatement, "Could not get table name", err)
	}

	match := verb.tablePattern().FindStringSubmatch(normalized)
	if match == nil {
		return Statement{}, apperr.New(apperr.KindUnrecognizedStatement, "Could not get table name")
	}

	return Statement{Raw: raw, Verb: verb, Table: match[1]}, nil
}

// BareTable returns the table identifier with any schema qualifier stripped.
// The permission matrix stores bare table names, so "public.tb_orders" and
// "tb_orders" resolve to the same record.
func (s Statement) BareTable() string {
	if i := strings.LastIndexByte(s.Table, '.'); i >= 0 {
		return s.Table[i+1:]
	}
	return s.Table
}

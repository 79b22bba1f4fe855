package statement

//go:generate go run github.com/dmarkham/enumer -type Verb -trimprefix Verb -transform lower -output verb.gen.go

// Verb is the SQL statement kind the gateway recognizes. It is a closed
// enumeration: each verb carries its own table-name extraction pattern, so an
// unknown leading word fails classification before anything else runs.
type Verb int

const (
	VerbSelect Verb = iota
	VerbInsert
	VerbUpdate
	VerbDelete
	VerbAlter
	VerbTruncate
	VerbDrop
)

// Mutates reports whether the verb changes database state.
func (v Verb) Mutates() bool {
	return v != VerbSelect
}

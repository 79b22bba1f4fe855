package model

import "sqlgate/pkg/statement"

// Flag is a binary allow/deny marker stored as "yes"/"no" in tb_parameter.
type Flag string

const (
	FlagYes Flag = "yes"
	FlagNo  Flag = "no"
)

// Allows reports whether the flag grants the operation. Anything other than
// an explicit "yes" is a deny; the matrix is default-deny.
func (f Flag) Allows() bool {
	return f == FlagYes
}

// Parameter is one row of the per-table permission matrix. It is populated by
// administrative tooling and read-only during request handling.
type Parameter struct {
	IDParameter  int    `gorm:"column:id_parameter;primaryKey"`
	DatabaseName string `gorm:"column:databasename"`
	Table        string `gorm:"column:tablename;uniqueIndex"`
	Select       Flag   `gorm:"column:id_select;default:no"`
	Insert       Flag   `gorm:"column:id_insert;default:no"`
	Update       Flag   `gorm:"column:id_update;default:no"`
	Delete       Flag   `gorm:"column:id_delete;default:no"`
	Truncate     Flag   `gorm:"column:id_truncate;default:no"`
	Drop         Flag   `gorm:"column:id_drop;default:no"`
	Alter        Flag   `gorm:"column:id_alter;default:no"`
	Token        Flag   `gorm:"column:id_token;default:no"`
}

func (Parameter) TableName() string {
	return "tb_parameter"
}

// FlagFor returns the allow/deny flag governing verb.
func (p Parameter) FlagFor(verb statement.Verb) Flag {
	switch verb {
	case statement.VerbSelect:
		return p.Select
	case statement.VerbInsert:
		return p.Insert
	case statement.VerbUpdate:
		return p.Update
	case statement.VerbDelete:
		return p.Delete
	case statement.VerbAlter:
		return p.Alter
	case statement.VerbTruncate:
		return p.Truncate
	case statement.VerbDrop:
		return p.Drop
	}
	return FlagNo
}

// TokenRequired reports whether requests against this table must present a
// valid access credential.
func (p Parameter) TokenRequired() bool {
	return p.Token.Allows()
}

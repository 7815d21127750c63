package diag

// Code is a stable diagnostic identifier, namespaced by pipeline stage.
type Code string

const (
	LexInvalidChar    Code = "Lex0001"
	LexUnterminated   Code = "Lex0002"
	LexMalformedDigit Code = "Lex0003"

	SynUnexpectedToken Code = "Syn0001"
	SynExpectedToken   Code = "Syn0002"

	NameUndeclared     Code = "Name0001"
	NameRedeclared     Code = "Name0002"
	NameYieldDiscarded Code = "Name0003"

	TypeTruncation  Code = "Type0001"
	TypeMismatch    Code = "Type0002"
	TypeUnresolved  Code = "Type0003"
)

func (c Code) String() string { return string(c) }

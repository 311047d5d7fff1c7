package nxdl

//go:generate go tool stringer -type=Term -output=term_string.go

// Term identifies the syntactic form of a definition key.
type Term int

const (
	_ Term = iota // skip zero value, use it as a default (invalid) value for Term

	TermGroup
	TermField
	TermAttribute
	TermLink
	TermChoice
	TermScalar

	// TermTotal is a constant that represents the total number of terms defined
	TermTotal = int(iota)
)

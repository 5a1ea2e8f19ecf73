package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Ident is an identifier that is not reserved in the active dialect.
	Ident
	// Keyword is an identifier with a reserved-identifier code.
	Keyword
	// Number is an integer or floating literal, kept verbatim.
	Number
	// String is a double-quoted literal including quotes.
	String
	// Char is a single-quoted literal including quotes.
	Char
	// Punct is an operator or punctuator.
	Punct
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case Keyword:
		return "Keyword"
	case Number:
		return "Number"
	case String:
		return "String"
	case Char:
		return "Char"
	case Punct:
		return "Punct"
	}
	return "Unknown"
}

package token

// RID is a reserved-identifier code. RIDUnused marks an ordinary identifier.
type RID uint8

const (
	RIDUnused RID = iota

	// базовые типы
	RIDInt
	RIDChar
	RIDFloat
	RIDDouble
	RIDVoid

	// модификаторы типа
	RIDUnsigned
	RIDShort
	RIDLong
	RIDSigned
	RIDInline
	RIDComplex
	RIDDefault
	RIDNorace

	// классы памяти и квалификаторы компонентного языка
	RIDAuto
	RIDStatic
	RIDExtern
	RIDRegister
	RIDTypedef
	RIDCommand
	RIDEvent
	RIDTask
	RIDAsync

	RIDMax
)

var ridNames = [RIDMax]string{
	RIDUnused:   "unused",
	RIDInt:      "int",
	RIDChar:     "char",
	RIDFloat:    "float",
	RIDDouble:   "double",
	RIDVoid:     "void",
	RIDUnsigned: "unsigned",
	RIDShort:    "short",
	RIDLong:     "long",
	RIDSigned:   "signed",
	RIDInline:   "inline",
	RIDComplex:  "complex",
	RIDDefault:  "default",
	RIDNorace:   "norace",
	RIDAuto:     "auto",
	RIDStatic:   "static",
	RIDExtern:   "extern",
	RIDRegister: "register",
	RIDTypedef:  "typedef",
	RIDCommand:  "command",
	RIDEvent:    "event",
	RIDTask:     "task",
	RIDAsync:    "async",
}

func (r RID) String() string {
	if r < RIDMax {
		return ridNames[r]
	}
	return "invalid"
}

// Reserved reports whether r denotes a keyword.
func (r RID) Reserved() bool {
	return r != RIDUnused && r < RIDMax
}

// IsTypeSpec reports whether r is a base type or type modifier keyword.
func (r RID) IsTypeSpec() bool {
	return r >= RIDInt && r <= RIDComplex
}

// IsStorageClass reports whether r can start a declaration as a storage
// class or a component-language qualifier.
func (r RID) IsStorageClass() bool {
	return r == RIDDefault || r == RIDNorace || (r >= RIDAuto && r <= RIDAsync)
}

// IsDialectSpecific reports whether r only exists in component-language files.
func (r RID) IsDialectSpecific() bool {
	switch r {
	case RIDCommand, RIDEvent, RIDTask, RIDAsync, RIDNorace, RIDDefault:
		return true
	}
	return false
}

package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo                Code = 1000
	LexUnknownChar         Code = 1001
	LexUnterminatedString  Code = 1002
	LexUnterminatedComment Code = 1003
	LexBadLineMarker       Code = 1004
	LexTokenTooLong        Code = 1005

	// Ввод-вывод
	IOLoadFileError Code = 4001

	// Проект
	ProjInfo        Code = 5000
	ProjBadDialect  Code = 5001
	ProjCacheFailed Code = 5002
)

var codeDescription = map[Code]string{
	UnknownCode:            "Unknown error",
	LexInfo:                "Lexical information",
	LexUnknownChar:         "Unknown character",
	LexUnterminatedString:  "Unterminated string or character literal",
	LexUnterminatedComment: "Unterminated comment",
	LexBadLineMarker:       "Malformed line marker",
	LexTokenTooLong:        "Token too long",
	IOLoadFileError:        "I/O load file error",
	ProjInfo:               "Project information",
	ProjBadDialect:         "Unknown dialect",
	ProjCacheFailed:        "Result cache unavailable",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

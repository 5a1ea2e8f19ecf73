package lexer

const utf8RuneSelf = 0x80

// ===== Классификаторы =====

func isIdentStartByte(c int) bool {
	return c == '_' || c == '$' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isIdentContinueByte(c int) bool {
	return isIdentStartByte(c) || isDec(c)
}

func isDec(c int) bool { return c >= '0' && c <= '9' }

func isSpace(c int) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v'
}

// Проверка для кейса ".5": текущая точка уже прочитана, дальше цифра?
func (s *Session) isNumberAfterDot() bool {
	next := s.ReadChar()
	s.UnreadChar(next)
	return isDec(next)
}

package dialect

// headerScanLimit bounds how much of a file Detect looks at.
const headerScanLimit = 16 << 10

// Detect guesses the dialect of content from the identifiers that precede
// the first top-level '{'. Comments, string literals and preprocessor lines
// are skipped. When nothing conclusive is found the result falls back to C.
func Detect(content []byte) Classification {
	return DetectWithFallback(content, C)
}

// DetectWithFallback is Detect with an explicit fallback dialect.
func DetectWithFallback(content []byte, fallback Kind) Classification {
	if len(content) > headerScanLimit {
		content = content[:headerScanLimit]
	}
	ev := NewEvidence()
	scanHeader(content, ev)
	return Classifier{Fallback: fallback}.Classify(ev)
}

func scanHeader(src []byte, ev *Evidence) {
	lineStart := true
	for i := 0; i < len(src); {
		b := src[i]
		switch {
		case b == '\n':
			lineStart = true
			i++
			continue
		case b == ' ' || b == '\t' || b == '\r' || b == '\f' || b == '\v':
			i++
			continue
		case b == '#' && lineStart:
			i = skipToEOL(src, i)
			continue
		}
		lineStart = false

		switch {
		case b == '{':
			return
		case b == '/' && i+1 < len(src) && src[i+1] == '/':
			i = skipToEOL(src, i)
		case b == '/' && i+1 < len(src) && src[i+1] == '*':
			i = skipBlock(src, i+2)
		case b == '"' || b == '\'':
			i = skipQuoted(src, i)
		case isIdentStart(b):
			start := i
			for i < len(src) && isIdentContinue(src[i]) {
				i++
			}
			RecordIdent(ev, string(src[start:i]), start)
		default:
			i++
		}
	}
}

func skipToEOL(src []byte, i int) int {
	for i < len(src) && src[i] != '\n' {
		i++
	}
	return i
}

func skipBlock(src []byte, i int) int {
	for i+1 < len(src) {
		if src[i] == '*' && src[i+1] == '/' {
			return i + 2
		}
		i++
	}
	return len(src)
}

func skipQuoted(src []byte, i int) int {
	q := src[i]
	i++
	for i < len(src) && src[i] != q && src[i] != '\n' {
		if src[i] == '\\' {
			i++
		}
		i++
	}
	return i + 1
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

// Package fuzztests holds the fuzz harnesses for the lexical front end.
//
// Each harness loads arbitrary bytes into a FileSet and drives a lexer
// session over them in every dialect; a panic, a hang past the token limit
// or a broken token stream fails the run. Seeds come from the inline table
// in seeds.go and from testdata.
//
// Запуск: go test ./internal/fuzz -fuzz=FuzzSessionTokens
package fuzztests

// Package token defines reserved-identifier codes, the keyword table and the
// token shape produced by the lexer.
// Invariants:
//   - Keyword matching is exact and case-sensitive; no prefix matching.
//   - The table is closed. C keywords are live in every dialect; the
//     component-language keywords only in component, implementation and any.
//   - Resolve never fails: unknown spellings come back as RIDUnused.
package token

// Package diag defines the diagnostic model shared by the lexer and the
// driver.
//
// # Purpose
//
//   - Provide deterministic data structures for findings produced while lexing.
//   - Offer light-weight utilities (Reporter, Bag) so producers can emit
//     diagnostics without coupling to storage or formatting.
//
// # Scope
//
// Package diag does no IO and no terminal rendering; that lives in
// internal/diagfmt.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning, Error.
//   - Code – numeric identifier with a stable string ID (LEX1003).
//   - Message – short, actionable text.
//   - Primary – the source.Location the finding is anchored at. A fatal
//     lexical error is anchored where the offending construct began, not
//     where input ran out.
//   - Notes – optional secondary locations.
//
// # Reporters
//
// BagReporter stores into a bounded Bag, DedupReporter drops repeats, and
// SystemHeaderFilter drops warnings and infos anchored in system headers.
package diag

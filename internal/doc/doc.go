// Package doc holds documentation comments captured by the lexer: the
// pending-docstring slot and the short/long summary splitter.
//
// A session keeps at most one pending docstring. Capturing a new one before
// the previous was taken silently replaces it; declarations are expected to
// take their docstring right after the comment that precedes them.
package doc

// Package dialect models the five lexical modes a source file can be read in
// and offers a light content-based guess for files whose mode is not fixed by
// the driver.
//
// The mode decides which reserved identifiers are live: component and
// implementation files treat `command`, `event`, `task`, `async`, `norace`
// and `default` as keywords, while plain C headers pulled into them keep those
// spellings as ordinary identifiers.
package dialect

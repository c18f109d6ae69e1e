// Package splitq tokenizes a command-style text line into an ordered
// sequence of arguments, keeping enough positional metadata to restore
// any contiguous sub-range of the original text verbatim.
//
// [Split] is the sole entry point. It recognizes three grouping styles:
// bare words, double-quoted spans, and backtick-delimited code spans of
// width 1 to 3, with backslash escaping throughout.
//
// [TokenSequence] wraps the original string with the token list and
// supports sub-range restoration, destructive shift, and slicing.
package splitq

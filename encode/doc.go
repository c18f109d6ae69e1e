// Package encode renders token sequences produced by splitq as text,
// optionally colored by group kind, or as YAML/JSON wire documents.
package encode

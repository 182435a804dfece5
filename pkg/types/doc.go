// Package types defines the metadata record model for the probemeta
// library: the ordered Record and its Field variants, typed accessors,
// validation issues, and standard error values.
package types

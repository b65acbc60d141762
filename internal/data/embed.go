// Package data holds the generated diacritics mapping.
//
// mapping.txt is produced by cmd/gendiacritics and must not be edited by hand.
package data

import _ "embed"

// Mapping is the content of the generated mapping data file.
//
//go:embed mapping.txt
var Mapping string

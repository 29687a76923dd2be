// Package naming provides device-key derivation, the ordered
// text-transformation rule table (built-in and file-loaded), and
// candidate-name composition against the stored registry names.
//
// The pieces are split along these boundaries: key.go, rules.go,
// rulefile.go, compose.go.
package naming

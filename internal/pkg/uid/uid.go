// Package uid provides small identifier generators.
package uid

// StringID generates string identifiers.
type StringID interface {
	Generate() string
}

// Package tools holds the built-in text transforms. Every transform is a pure
// func(string) string; failures are reported as fixed "Error: ..." strings
// rather than Go errors.
package tools

import (
	"github.com/ryan-rushton/textkit/internal/registry"
	"github.com/ryan-rushton/textkit/internal/tools/calc"
)

// Fixed outputs for inputs a tool cannot handle.
const (
	MsgInvalidCalculation = "Error: Invalid calculation"
	MsgInvalidJSON        = "Error: Invalid JSON"
	MsgUnableToEncode     = "Error: Unable to encode"
	MsgInvalidBase64      = "Error: Invalid Base64"
	MsgInvalidURL         = "Error: Invalid URL encoding"
)

// Default returns the built-in palette in display order. opts tune the
// calculator's evaluation limits.
func Default(opts ...calc.Option) []registry.Tool {
	return []registry.Tool{
		{
			ID:          "calculator",
			Name:        "Calculator",
			Description: "Performs basic arithmetic calculations",
			Execute:     Calculator(calc.New(opts...)),
		},
		{
			ID:          "text-analyzer",
			Name:        "Text Analyzer",
			Description: "Analyzes text and provides statistics",
			Execute:     AnalyzeText,
		},
		{
			ID:          "case-converter",
			Name:        "Case Converter",
			Description: "Converts text to different cases",
			Execute:     ConvertCase,
		},
		{
			ID:          "json-formatter",
			Name:        "JSON Formatter",
			Description: "Formats and validates JSON",
			Execute:     FormatJSON,
		},
		{
			ID:          "base64-encoder",
			Name:        "Base64 Encoder",
			Description: "Encodes text to Base64",
			Execute:     EncodeBase64,
		},
		{
			ID:          "base64-decoder",
			Name:        "Base64 Decoder",
			Description: "Decodes Base64 text",
			Execute:     DecodeBase64,
		},
		{
			ID:          "url-encoder",
			Name:        "URL Encoder",
			Description: "Encodes text for URLs",
			Execute:     EncodeURL,
		},
		{
			ID:          "url-decoder",
			Name:        "URL Decoder",
			Description: "Decodes URL-encoded text",
			Execute:     DecodeURL,
		},
		{
			ID:          "reverse-text",
			Name:        "Reverse Text",
			Description: "Reverses the input text",
			Execute:     Reverse,
		},
		{
			ID:          "hash-generator",
			Name:        "Hash Generator",
			Description: "Generates a simple hash of the input",
			Execute:     Hash,
		},
	}
}

// NewRegistry builds a registry over the default palette.
func NewRegistry(opts ...calc.Option) (*registry.Registry, error) {
	return registry.New(Default(opts...)...)
}

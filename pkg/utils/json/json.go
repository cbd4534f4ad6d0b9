// Package json is a thin facade over bytedance/sonic configured to behave like
// encoding/json, so callers never import sonic directly.
package json

import (
	stdjson "encoding/json"

	"github.com/bytedance/sonic"
)

// Number is a JSON number kept as its literal text.
type Number = stdjson.Number

var (
	api = sonic.ConfigStd

	// numberAPI decodes numbers into Number instead of float64.
	numberAPI = sonic.Config{
		EscapeHTML:       true,
		SortMapKeys:      true,
		CompactMarshaler: true,
		CopyString:       true,
		ValidateString:   true,
		UseNumber:        true,
	}.Froze()
)

func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return api.MarshalIndent(v, prefix, indent)
}

func MarshalString(v any) (string, error) {
	return api.MarshalToString(v)
}

func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}

// UnmarshalUseNumber is Unmarshal with numbers decoded as Number, so integers
// beyond float64 precision survive a decode/encode round trip.
func UnmarshalUseNumber(data []byte, v any) error {
	return numberAPI.Unmarshal(data, v)
}

// Valid reports whether data is a valid JSON encoding.
func Valid(data []byte) bool {
	return api.Valid(data)
}

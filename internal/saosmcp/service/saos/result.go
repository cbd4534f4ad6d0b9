package saos

import (
	"github.com/kiosk404/saos-mcp/pkg/utils/json"
)

// EnvelopeSource tells which request an ErrorEnvelope echoes back.
type EnvelopeSource int

const (
	// SourceSearch envelopes echo the outbound query parameters.
	SourceSearch EnvelopeSource = iota
	// SourceDetail envelopes echo the requested URL.
	SourceDetail
)

// ErrorEnvelope is the data returned in place of a payload when SAOS answers
// with an error status. It always encodes as exactly four keys: error, status,
// detail, and either params or url depending on Source.
type ErrorEnvelope struct {
	Source EnvelopeSource `json:"-"`
	Error  bool           `json:"error"`
	Status int            `json:"status"`
	Detail any            `json:"detail"`
	Params Params         `json:"params"`
	URL    string         `json:"url"`
}

type searchEnvelope struct {
	Error  bool   `json:"error"`
	Status int    `json:"status"`
	Detail any    `json:"detail"`
	Params Params `json:"params"`
}

type detailEnvelope struct {
	Error  bool   `json:"error"`
	Status int    `json:"status"`
	Detail any    `json:"detail"`
	URL    string `json:"url"`
}

// MarshalJSON writes params (an empty object when nil) for search envelopes
// and url for detail envelopes.
func (e ErrorEnvelope) MarshalJSON() ([]byte, error) {
	if e.Source == SourceDetail {
		return json.Marshal(detailEnvelope{Error: e.Error, Status: e.Status, Detail: e.Detail, URL: e.URL})
	}
	params := e.Params
	if params == nil {
		params = Params{}
	}
	return json.Marshal(searchEnvelope{Error: e.Error, Status: e.Status, Detail: e.Detail, Params: params})
}

// Result is the outcome of one call that reached SAOS and got a response.
// Faults (transport errors, undecodable 2xx bodies) are never a Result.
type Result struct {
	payload  any
	envelope *ErrorEnvelope
}

// NewResult wraps a decoded 2xx payload.
func NewResult(payload any) Result {
	return Result{payload: payload}
}

// NewErrorResult wraps an error envelope.
func NewErrorResult(env *ErrorEnvelope) Result {
	return Result{envelope: env}
}

// IsError reports whether SAOS answered with an error status.
func (r Result) IsError() bool {
	return r.envelope != nil
}

// Payload returns the decoded 2xx body, or nil for error results.
func (r Result) Payload() any {
	return r.payload
}

// Envelope returns the error envelope, or nil for successful results.
func (r Result) Envelope() *ErrorEnvelope {
	return r.envelope
}

// Value is what callers see: the payload unchanged, or the error envelope.
func (r Result) Value() any {
	if r.envelope != nil {
		return r.envelope
	}
	return r.payload
}

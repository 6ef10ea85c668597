// Package types holds the JSON envelopes shared by every API response.
package types

// SuccessEnvelope wraps successful payloads: cart views, product pages,
// checkout confirmations.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the wire form of a storefront error. Code carries the
// machine-readable taxonomy value (VALIDATION_ERROR, OUT_OF_STOCK, ...);
// Details is populated only for codes that allow field-level context.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope wraps an APIError for non-2xx responses.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

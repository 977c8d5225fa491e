package types

// Result is the outcome of handling a single message.
type Result struct {
	// Code is zero iff the operation succeeded.
	Code CodeType `json:"code"`

	// Codespace qualifies the Code.
	Codespace CodespaceType `json:"codespace"`

	// Data is any payload the handler returns, typically amino-encoded.
	Data []byte `json:"data"`

	// Log is free-form text, mainly the error description on failure.
	Log string `json:"log"`

	// Events emitted during handling.
	Events Events `json:"events"`
}

// IsOK - is the result successful?
func (res Result) IsOK() bool {
	return res.Code.IsOK()
}

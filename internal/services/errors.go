package services

type MissingParamsError struct{ Message string }

func (e *MissingParamsError) Error() string { return e.Message }

type AssociationError struct{ Message string }

func (e *AssociationError) Error() string { return e.Message }

// UpstreamError wraps a failed external API call; the underlying message is
// surfaced verbatim to the caller.
type UpstreamError struct{ Err error }

func (e *UpstreamError) Error() string { return e.Err.Error() }

func (e *UpstreamError) Unwrap() error { return e.Err }

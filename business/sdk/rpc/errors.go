package rpc

// ProcedureError represents a structured error returned by the backend in
// the response envelope. The message is surfaced to callers verbatim.
type ProcedureError struct {
	Procedure string
	Message   string
}

// Error implements the error interface.
func (e *ProcedureError) Error() string {
	return e.Message
}

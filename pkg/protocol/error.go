package protocol

// ErrorCode identifies an error reported to the client.
type ErrorCode string

const (
	ErrInvalidMessage  ErrorCode = "InvalidMessage"  // Malformed message
	ErrHandlerNotFound ErrorCode = "HandlerNotFound" // No handler for HID
	ErrHandlerPanic    ErrorCode = "HandlerPanic"    // Handler panicked
	ErrServerError     ErrorCode = "ServerError"     // Render or app failure
)

// ErrorMessage builds an error frame.
func ErrorMessage(code ErrorCode, message string) Message {
	return Message{Type: TypeError, Code: code, Message: message}
}

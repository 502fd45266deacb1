package commons

// FieldError points at one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Detail string       `json:"detail"`
	Errors []FieldError `json:"errors,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func NewErrorResponse(detail string, errors ...FieldError) ErrorResponse {
	return ErrorResponse{
		Detail: detail,
		Errors: errors,
	}
}

func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

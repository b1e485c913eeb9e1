package commons

// Response is the envelope every service operation returns alongside its
// error: either a success payload or a message plus detail strings.
type Response[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *T       `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    &data,
	}
}

func ErrorResponse[T any](message string, errors ...string) Response[T] {
	return Response[T]{
		Success: false,
		Message: message,
		Errors:  errors,
	}
}

// FailureResponse wraps a domain error into an error envelope with the
// error text as the single detail.
func FailureResponse[T any](message string, err error) Response[T] {
	if err == nil {
		return ErrorResponse[T](message)
	}
	return ErrorResponse[T](message, err.Error())
}

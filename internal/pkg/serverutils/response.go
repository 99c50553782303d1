package serverutils

// Response is the uniform envelope every endpoint returns. Callers branch on
// Status/Message, not on the HTTP status code (reachable routes always
// answer 200).
type Response[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	if message == "" {
		message = "success"
	}
	return Response[T]{
		Status:  "success",
		Message: message,
		Data:    data,
	}
}

// EmptySuccessResponse reports a soft miss: the request was fine but there is
// nothing to return (e.g. unknown QA id).
func EmptySuccessResponse(message string) Response[map[string]interface{}] {
	return Response[map[string]interface{}]{
		Status:  "success",
		Message: message,
		Data:    map[string]interface{}{},
	}
}

func FailedResponse(message string) Response[map[string]interface{}] {
	return Response[map[string]interface{}]{
		Status:  "failed",
		Message: message,
		Data:    map[string]interface{}{},
	}
}

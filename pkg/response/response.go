package response

// SuccessBody is the success envelope for mutating endpoints.
type SuccessBody struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorBody is the error envelope: {"error": "<message>"}.
type ErrorBody struct {
	Error string `json:"error"`
}

func OK() SuccessBody {
	return SuccessBody{Success: true}
}

func OKMessage(message string) SuccessBody {
	return SuccessBody{Success: true, Message: message}
}

func Error(message string) ErrorBody {
	return ErrorBody{Error: message}
}

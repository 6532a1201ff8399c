package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"todosvc/shared/constant"
	"todosvc/shared/failure"
	"todosvc/shared/logger"
)

type Error struct {
	Error string `json:"error"`
}

type Message struct {
	Message string `json:"message"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: message})
}

// WithJSON sends payload as the response body
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	response(writer, code, payload)
}

// WithError sends a response with an error message. Internal failures are logged
// and answered with the generic message only.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	var fail *failure.Failure
	if errors.As(err, &fail) {
		errMsg = fail.Message
	}

	if failure.IsInternal(err) {
		logger.ErrorWithStack(err)

		errMsg = failure.MessageInternalError
	}

	response(writer, code, Error{Error: errMsg})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	response(writer, http.StatusTooManyRequests, Error{Error: constant.ResponseErrorRequestLimitExceeded})
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		code = http.StatusInternalServerError
		response, _ = json.Marshal(Error{Error: failure.MessageInternalError})
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(response); err != nil {
		logger.ErrorWithStack(err)
	}
}

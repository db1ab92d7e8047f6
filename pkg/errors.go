package pkg

import "net/http"

// AppError is the error envelope handlers return to HTTP clients.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	if httpStatus == 0 {
		httpStatus = http.StatusInternalServerError
	}
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return NewDomainError(code, message, nil, httpStatus)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// ToHTTPError never exposes the wrapped cause.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Status: e.HTTPStatus}
}

package pkg

// AppError is the error shape crossing the HTTP boundary: a stable code
// for clients, a human message, the optional underlying cause and the
// status the handler should answer with.
type AppError struct {
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Details    []string `json:"details,omitempty"`
	Err        error    `json:"-"`
	HTTPStatus int      `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// NewValidationError carries the per-field issue list produced by the
// estimation core so the UI can display each reason.
func NewValidationError(code, message string, details []string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Details: details, HTTPStatus: httpStatus}
}

// HTTPError is the response body for failed requests.
type HTTPError struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Details: e.Details}
}

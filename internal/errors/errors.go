package errors

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// The same error covers both causes so the response cannot leak which
	// one occurred.
	ErrInvalidCredentials = errors.New("Invalid Email or Password")
	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrSellNotFound is returned when no account matches the lookup.
	ErrSellNotFound = errors.New("seller not found")
	// ErrInvalidResetToken is returned when a reset token is unknown or expired.
	ErrInvalidResetToken = errors.New("invalid reset password token")
	// ErrBadOldPassword is returned when the old password does not match on change.
	ErrBadOldPassword = errors.New("old password is invalid")
	// ErrForbidden is returned when the account role is not allowed the resource.
	ErrForbidden = errors.New("role is not allowed to access this resource")
	// ErrMailDelivery is returned when the email provider fails to send.
	ErrMailDelivery = errors.New("failed to send email")
	// ErrImageUpload is returned when the image host rejects an upload.
	ErrImageUpload = errors.New("failed to upload image")
)

// Response is the uniform failure body.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HTTPError carries an HTTP status alongside the user-facing message.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// New creates an HTTPError with the given status and message.
func New(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// Map translates domain errors to HTTP errors. Unknown errors become 500
// without exposing their message.
func Map(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return New(http.StatusUnauthorized, ErrInvalidCredentials.Error())
	case errors.Is(err, ErrEmailTaken):
		return New(http.StatusBadRequest, ErrEmailTaken.Error())
	case errors.Is(err, ErrSellNotFound):
		return New(http.StatusNotFound, ErrSellNotFound.Error())
	case errors.Is(err, ErrInvalidResetToken):
		return New(http.StatusNotFound, ErrInvalidResetToken.Error())
	case errors.Is(err, ErrBadOldPassword):
		return New(http.StatusBadRequest, ErrBadOldPassword.Error())
	case errors.Is(err, ErrForbidden):
		return New(http.StatusForbidden, ErrForbidden.Error())
	case errors.Is(err, ErrMailDelivery), errors.Is(err, ErrImageUpload):
		return New(http.StatusInternalServerError, err.Error())
	default:
		return New(http.StatusInternalServerError, "internal server error")
	}
}

// EchoHandler is the centralized echo error handler. Every failure, whether
// a domain error, an echo.HTTPError from middleware, or a panic recovered
// upstream, is rendered as {success:false, message}.
func EchoHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "internal server error"

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		status = echoErr.Code
		if m, ok := echoErr.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(status)
		}
	} else {
		mapped := Map(err)
		status = mapped.StatusCode
		message = mapped.Message
	}

	if err := c.JSON(status, Response{Success: false, Message: message}); err != nil {
		c.Logger().Error(err)
	}
}

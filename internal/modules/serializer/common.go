package serializer

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/launchlabs/leo-backend/internal/pkg/apperr"
)

// Response
type Response struct {
	Code  int         `json:"code"`
	Data  interface{} `json:"data,omitempty"`
	Msg   string      `json:"msg"`
	Error string      `json:"error,omitempty"`
}

// Err
func Err(errCode int, msg string, err error) Response {
	res := Response{
		Code: errCode,
		Msg:  msg,
	}
	// development mode, show error detail
	if err != nil && gin.Mode() != gin.ReleaseMode {
		res.Error = fmt.Sprintf("%+v", err)
	}
	return res
}

// ParamErr
func ParamErr(msg string, err error) Response {
	if msg == "" {
		msg = "parameter error"
	}
	return Err(http.StatusBadRequest, msg, err)
}

// DBErr
func DBErr(msg string, err error) Response {
	if msg == "" {
		msg = "database error"
	}
	return Err(http.StatusInternalServerError, msg, err)
}

// AuthErr
func AuthErr(msg string) Response {
	if msg == "" {
		msg = "authentication error"
	}
	return Err(http.StatusUnauthorized, msg, nil)
}

// StatusOf maps the error taxonomy onto HTTP status codes. Anything
// without a kind is treated as a persistence-level failure.
func StatusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindUnauthenticated, apperr.KindInvalidToken, apperr.KindTokenExpired:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// FromError renders any service error as a status plus envelope.
// Every error reaches the client; nothing gets logged-and-dropped.
func FromError(err error) (int, Response) {
	status := StatusOf(err)
	msg := "internal error"
	var ae *apperr.Error
	if errors.As(err, &ae) {
		msg = ae.Message()
	}
	return status, Err(status, msg, err)
}

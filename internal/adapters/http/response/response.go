// Package response
package response

import "net/http"

type Response struct {
	Message string `json:"message"`
}

// Envelope pairs a status code with the body the transport should send.
type Envelope struct {
	Status int
	Body   any
}

func OK(body any) Envelope {
	return Envelope{Status: http.StatusOK, Body: body}
}

func BadRequest(body any) Envelope {
	return Envelope{Status: http.StatusBadRequest, Body: body}
}

func Unauthorized(body any) Envelope {
	return Envelope{Status: http.StatusUnauthorized, Body: body}
}

func Forbidden(body any) Envelope {
	return Envelope{Status: http.StatusForbidden, Body: body}
}

// InternalServerError never carries the cause.
func InternalServerError() Envelope {
	return Envelope{
		Status: http.StatusInternalServerError,
		Body:   &Response{Message: "internal server error"},
	}
}

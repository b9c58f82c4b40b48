// Package http carries the JSON envelope, the router seam and the server
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "datesieve/internal/platform/errors"
	pnet "datesieve/internal/platform/net"
	"datesieve/internal/platform/net/http/bind"
)

// Envelope wraps every body the API writes. Exactly one of Data or the
// error fields (Code, Error, Field) is filled
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// JSON encodes v with status; encode errors are dropped since the header is out
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	h := w.Header()
	h.Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

// Response is a handler result. Status 0 resolves to 200, or for an error
// Body to the status of its code
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

func Error(err error) Response { return Response{Body: err} }

// Handle turns a Response producer into a HandlerFunc
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		resp := h(r)
		for name, values := range resp.Header {
			w.Header()[name] = append(w.Header()[name], values...)
		}
		status, env := resp.envelope()
		if env == nil {
			w.WriteHeader(status)
			return
		}
		env.RequestID = pnet.RequestID(r.Context())
		JSON(w, status, env)
	}
}

// envelope resolves the status; a nil envelope means no body (204)
func (resp Response) envelope() (int, *Envelope) {
	err, failed := resp.Body.(error)
	failed = failed && err != nil

	status := resp.Status
	switch {
	case status != 0:
	case failed:
		status = perr.HTTPStatus(err)
	default:
		status = stdhttp.StatusOK
	}

	env := &Envelope{StatusCode: status, Status: stdhttp.StatusText(status)}
	switch {
	case failed:
		wire := perr.WireFrom(err)
		env.Code, env.Error, env.Field = wire.Code, wire.Message, wire.Field
	case status == stdhttp.StatusNoContent:
		return status, nil
	default:
		env.Data = resp.Body
	}
	return status, env
}

// JSONHandler decodes and validates the body into T, then runs fn.
// fn may return a Response to choose its own status
func JSONHandler[T any](fn func(*stdhttp.Request, T) (any, error)) Handler {
	return Handle(func(r *stdhttp.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		return asResponse(fn(r, in))
	})
}

// CallHandler is JSONHandler without a body
func CallHandler(fn func(*stdhttp.Request) (any, error)) Handler {
	return Handle(func(r *stdhttp.Request) Response { return asResponse(fn(r)) })
}

func asResponse(out any, err error) Response {
	if err != nil {
		return Response{Body: err}
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return Response{Status: stdhttp.StatusOK, Body: out}
}

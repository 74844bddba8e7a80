// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
)

// HandlerFunc handles a request and reports unexpected faults to the
// enclosing pipeline as a non-nil error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Interceptor is one stage of a [Pipeline]. It may act before and after
// calling next, or short-circuit the request by writing a response and not
// calling next at all. Errors returned by next should be passed on unless
// the stage handles them.
type Interceptor interface {
	Intercept(w http.ResponseWriter, r *http.Request, next HandlerFunc) error
}

// InterceptorFunc adapts a function to the [Interceptor] interface.
type InterceptorFunc func(w http.ResponseWriter, r *http.Request, next HandlerFunc) error

func (f InterceptorFunc) Intercept(w http.ResponseWriter, r *http.Request, next HandlerFunc) error {
	return f(w, r, next)
}

// Pipeline runs an ordered list of interceptors around a terminal handler.
// The first interceptor is the outermost one.
type Pipeline struct {
	interceptors []Interceptor
	handler      HandlerFunc
}

// NewPipeline builds a pipeline that runs interceptors in the given order
// and then handler.
func NewPipeline(handler HandlerFunc, interceptors ...Interceptor) *Pipeline {
	return &Pipeline{
		interceptors: interceptors,
		handler:      handler,
	}
}

// Run executes the pipeline and returns the error left unhandled by all
// stages.
func (p *Pipeline) Run(w http.ResponseWriter, r *http.Request) error {
	return p.next(0)(w, r)
}

// ServeHTTP implements [http.Handler]. An error no stage handled is only
// logged: the response is left as the stages wrote it.
func (p *Pipeline) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := p.Run(w, r); err != nil {
		logger.FromRequest(r).Err(err).Msg("unhandled error at the end of the pipeline")
	}
}

func (p *Pipeline) next(i int) HandlerFunc {
	if i == len(p.interceptors) {
		return p.handler
	}

	return func(w http.ResponseWriter, r *http.Request) error {
		return p.interceptors[i].Intercept(w, r, p.next(i+1))
	}
}

// errorCarrier transports the error returned by a route handler through a
// router that only knows [http.Handler].
type errorCarrier struct {
	err error
}

type errorCarrierKey struct{}

// Dispatch turns router into the terminal stage of a pipeline. Handlers
// registered with [Handle] report their error back through the request
// context, and Dispatch returns it.
func Dispatch(router http.Handler) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		carrier := &errorCarrier{}
		router.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), errorCarrierKey{}, carrier)))
		return carrier.err
	}
}

// Handle adapts fn to [http.HandlerFunc] for registration on a router.
// Outside of a [Dispatch] stage an error of fn is answered with a generic
// 500 response directly.
func Handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		if carrier, ok := r.Context().Value(errorCarrierKey{}).(*errorCarrier); ok {
			carrier.err = err
			return
		}

		logger.FromRequest(r).Err(err).Msg("request failed")
		writeError(w, r, http.StatusInternalServerError, MsgInternalServerError)
	}
}

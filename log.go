// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package servicex

import (
	"github.com/gogama/servicex/request"
	"github.com/gogama/servicex/transient"
	"github.com/rs/zerolog"
)

// LogHandler returns a Handler which writes one structured log line
// per AfterMaterialize event (at debug level) and per AfterDispatch
// event (at info level, or warn level if the dispatch resolved to an
// error). Other events are ignored.
//
// Install it for both events with InstallLogging.
func LogHandler(logger zerolog.Logger) Handler {
	return HandlerFunc(func(evt Event, e *request.Execution) {
		switch evt {
		case AfterMaterialize:
			logger.Debug().
				Str("dispatch_id", e.ID.String()).
				Str("method", e.Plan.Method).
				Str("url", e.Plan.URL.String()).
				Dur("timeout", e.Plan.Timeout).
				Msg("dispatching request")
		case AfterDispatch:
			ev := logger.Info()
			if e.Err != nil {
				ev = logger.Warn().Err(e.Err)
			}
			ev = ev.Str("dispatch_id", e.ID.String())
			if e.Plan != nil {
				ev = ev.Str("method", e.Plan.Method).Str("url", e.Plan.URL.String())
			}
			if cat := e.Category(); cat != transient.Not {
				ev = ev.Stringer("category", cat)
			}
			ev.Int("status", e.StatusCode).
				Int("bytes", len(e.Body)).
				Dur("duration", e.Duration()).
				Msg("request dispatched")
		}
	})
}

// InstallLogging pushes a LogHandler for logger onto g for the events
// it logs.
func InstallLogging(g *HandlerGroup, logger zerolog.Logger) {
	h := LogHandler(logger)
	g.PushBack(AfterMaterialize, h)
	g.PushBack(AfterDispatch, h)
}

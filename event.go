// Copyright 2021 The servicex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package servicex

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Service to extend it with custom
// functionality, such as logging.
type Event int

const (
	// BeforeDispatch identifies the event that occurs before a
	// descriptor is materialized.
	//
	// When Service fires BeforeDispatch, the execution's ID and
	// descriptor are set, and nothing else.
	BeforeDispatch Event = iota
	// AfterMaterialize identifies the event that occurs after the
	// descriptor has been materialized into a plan, just before the
	// transfer begins.
	//
	// AfterMaterialize never fires if materialization failed.
	AfterMaterialize
	// AfterTransfer identifies the event that occurs when the
	// transport session reports the transfer outcome, before the
	// outcome is classified.
	//
	// When Service fires AfterTransfer, the execution's status code,
	// body and transport error reflect the outcome. It fires on the
	// goroutine the session chose for the callback.
	AfterTransfer
	// AfterDispatch identifies the event that occurs after the dispatch
	// has resolved to a value or an error, just before the completion
	// callback is delivered.
	//
	// When Service fires AfterDispatch, the execution's end time is set
	// and its error holds the error the dispatch resolved to, if any.
	// AfterDispatch fires exactly once per dispatch, including when
	// materialization failed.
	AfterDispatch
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events types as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeDispatch",
	"AfterMaterialize",
	"AfterTransfer",
	"AfterDispatch",
}

// Events returns a slice containing all events which can occur in a
// dispatch, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeDispatch,
		AfterMaterialize,
		AfterTransfer,
		AfterDispatch,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}

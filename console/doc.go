/*
Package console prints ordered sets to a terminal, for inspection and
debugging.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package console

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rbset'
func tracer() tracing.Trace {
	return tracing.Select("rbset")
}

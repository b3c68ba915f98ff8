/*
Package textfile provides API helpers to stream UTF-8 text files in fragments.

Fragments are read by a background goroutine and broadcast to the consumer in
file order. Fragment boundaries never split a word. HTML files are reduced to
their text content.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rbset'
func tracer() tracing.Trace {
	return tracing.Select("rbset")
}

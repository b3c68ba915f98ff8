/*
Package vocab maintains word frequencies of texts.

A Vocabulary keeps its words in an rbset.Set, ordered alphabetically. Entries
are linked intrusively, and upserts use the Find/Insert position protocol of
package rbset, i.e. every word costs one walk down the tree, whether it is
new or not.

Vocabularies are safe for concurrent use.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package vocab

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rbset'
func tracer() tracing.Trace {
	return tracing.Select("rbset")
}

/*
Package notation implements the token grammar of knit symbols: a
four-level operator-precedence mini-language embedded in the text of a
symbolic name. Dot and colon punctuation combine name pieces into
composition and partial-application forms, at a tight and a loose tier
each:

	.    composition, tight          first.rest     ⟼  (comp first rest)
	:    partial application, tight  reduce:+       ⟼  (partial reduce +)
	..   composition, loose          inc..reduce:+  ⟼  (comp inc (partial reduce +))
	:.   partial application, loose  map:.+:'1      ⟼  (partial map (partial + 1))

Indivisible tokens resolve to argument selectors (integer tokens), literal
integers and quoted names (quote-marker tokens), or plain name references.

The grammar is purely lexical: it interprets one symbol at a time and never
looks at anything else. A namespace prefix is opaque — it is split off by
the reader before a symbol reaches this package. Consequently, namespace
separators must precede all grammar punctuation in a symbol; a separator
positioned after punctuation cannot be represented and such symbols are
rewritten meaninglessly.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package notation

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'knit.notation'.
func tracer() tracing.Trace {
	return tracing.Select("knit.notation")
}

/*
Package sarf indexes Arabic trilateral roots and morphological schemes and
derives, validates and decomposes words by substituting root consonants into
scheme templates.

Roots live in an AVL tree (RootIndex) which also keeps, per root, a usage
frequency and the list of derived words recorded for it. Schemes live in a
chained hash table (SchemeTable) keyed by scheme name. An Engine borrows both
structures and implements the morphological operations on top of them.

A scheme pattern marks the positions of the three root consonants with the
letters ف, ع and ل (the traditional فعل template). Applying the pattern
"مفعول" to the root "كتب" yields "مكتوب".

Loading of root lists from files is outside this package. Use adapters like
package rootfile to parse a concrete format and feed this API.

Further Reading

	https://en.wikipedia.org/wiki/Semitic_root
	https://en.wikipedia.org/wiki/Arabic_verbs#Derived_stems

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package sarf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sarf'
func tracer() tracing.Trace {
	return tracing.Select("sarf")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

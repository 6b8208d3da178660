/*
Package report provides read-only views over a finished derivation tree:
grouping theorems by level, counting them, fingerprinting a derivation run
and rendering the tree to a writer.

Nothing in this package mutates the tree; all functions may be called
repeatedly with identical results.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package report

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'miu.report'.
func tracer() tracing.Trace {
	return tracing.Select("miu.report")
}

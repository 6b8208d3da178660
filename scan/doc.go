/*
Package scan tokenizes symbol strings of the MIU alphabet {M, I, U}.

The derivation engine itself is alphabet-agnostic: rules simply fail to
match on foreign input. Front ends, however, usually want to reject a
mistyped axiom or theorem before deriving from it, and to report where the
offending character sits. This package provides a lexmachine-backed
tokenizer for that purpose, splitting input into maximal runs of a single
symbol.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scan

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'miu.scan'.
func tracer() tracing.Trace {
	return tracing.Select("miu.scan")
}

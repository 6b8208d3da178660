/*
Package derive implements a breadth-first derivation engine for
string-rewrite formal systems.

Starting from an axiom, the engine applies every rule of a rule set to
every frontier theorem, level by level, up to a maximum derivation depth.
Each newly discovered theorem becomes a child of the theorem which produced
it, yielding a derivation tree in which every theorem string occurs exactly
once. The depth bound is the sole termination guarantee: two of the MIU
rules grow string length without limit, so the state space is not finite
in general.

The resulting tree is immutable after Generate returns and may be consumed
concurrently by the read-only traversals of this package and of package
report.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package derive

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'miu.derive'.
func tracer() tracing.Trace {
	return tracing.Select("miu.derive")
}

/*
Package mugen/main provides a command line tool for bounded enumeration in
the MIU formal system. In batch mode it derives every theorem reachable
from the axiom within a depth bound and prints the derivation tree, the
theorems grouped by level and a handful of sample derivation paths. With
-repl it drops into an interactive mode for exploring derivations and
single rule applications.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'miu.derive'
func tracer() tracing.Trace {
	return tracing.Select("miu.derive")
}

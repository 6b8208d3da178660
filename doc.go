/*
Package miu is a toolbox for bounded enumeration in string-rewrite
formal systems.

MIU is the post-production system defined in the "MU Puzzle" chapter of
Hofstadter's "Gödel, Escher, Bach": a single axiom "MI" and four rewrite
rules over the alphabet {M, I, U}. This module enumerates every theorem
derivable from an axiom within a given number of rule applications,
recording for each theorem the derivation that produced it.
Package structure is as follows:

■ derive: Package derive implements the breadth-first derivation engine,
producing a deduplicated derivation tree, together with traversal over it.

■ report: Package report groups, counts and renders the theorems of a
derivation tree.

■ scan: Package scan tokenizes symbol strings of the MIU alphabet.

The base package contains the rewrite rules and the data types which are
used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package miu

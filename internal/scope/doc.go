// Package scope is the address-set engine behind scopeforge.
//
// A scope file lists IPv4 targets one entry per line:
//
//	# comments start with '#' or '//'
//	10.0.0.5                     single address
//	10.0.0.0/24                  network block (host bits tolerated)
//	10.0.1.0/255.255.255.0       network block with a dotted netmask
//	10.0.2.10-10.0.2.20          inclusive range
//
// ParseLine turns one entry into addresses, CollectFile unions a whole file
// into a Set, Set.Difference removes exclusions, and Aggregate collapses a
// Set back into the minimal list of CIDR blocks:
//
//	in, err := scope.CollectFile("in_scope.txt", opts, logger)
//	out, err := scope.CollectFile("out_of_scope.txt", opts, logger)
//	final := in.Difference(out)
//	for _, b := range scope.Aggregate(final) {
//	    fmt.Println(b)
//	}
//
// # Network Blocks
//
// A /32 entry contributes its single address. Any larger block contributes
// only its host addresses unless ExpandOptions asks for the network (base)
// and broadcast (top) addresses as well. A /31 has no host addresses, so it
// contributes nothing without options.
package scope

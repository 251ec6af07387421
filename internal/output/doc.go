// Package output turns collected scope sets into the files scopeforge
// leaves behind.
//
// Assembler.Run subtracts the exclusion set, logs the three counts and,
// depending on Mode, writes:
//
//	scope_cleaned                  aggregated CIDR blocks of the final scope
//	scope_cleaned_every_ip_listed  every final address (AllAddresses only)
//	out_of_scope_aggregated        aggregated CIDR blocks of the exclusion set
//	out_of_scope_addresses         every excluded address (AllAddresses only)
//
// SummaryOnly writes nothing. FailOnEmpty with an empty final scope returns
// an error carrying errors.ExitEmptyScope and writes nothing.
package output

// Package testutil provides test fixtures and utilities.
//
// # Fixtures
//
// Scope file fixtures are embedded using go:embed and come in in/out pairs:
//
//	fixtures/in_basic          fixtures/out_basic
//	fixtures/in_range_format   fixtures/out_range_format
//	fixtures/in_all_excluded   fixtures/out_all_excluded
//	fixtures/in_complex        fixtures/out_complex
//	fixtures/in_cidr           fixtures/out_cidr
//
// # Usage in Tests
//
//	func TestClean(t *testing.T) {
//	    env := testutil.NewTestEnv(t)
//	    in := env.CopyFixture("in_basic")
//	    out := env.WriteScope("out", "10.0.0.3")
//	    // run against env.OutputDir ...
//	    lines := env.ReadArtifact("scope_cleaned")
//	}
package testutil

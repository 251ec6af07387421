package scope

import (
	"fmt"
	"net/netip"
	"slices"

	"go4.org/netipx"
)

// Block is an aligned network block of 2^(32-Bits) addresses starting at Base.
type Block struct {
	Base Addr
	Bits int
}

// BlockFrom converts an IPv4 prefix, masking away host bits.
func BlockFrom(p netip.Prefix) Block {
	p = p.Masked()
	return Block{Base: AddrFrom(p.Addr()), Bits: p.Bits()}
}

// ParseBlock parses "a.b.c.d/n" (host bits are masked) or a bare address as /32.
func ParseBlock(s string) (Block, error) {
	p, err := parseNetwork(s)
	if err != nil {
		return Block{}, err
	}
	return BlockFrom(p), nil
}

// Size returns the number of addresses in b.
func (b Block) Size() uint64 {
	return uint64(1) << (32 - b.Bits)
}

// Last returns the top address of b.
func (b Block) Last() Addr {
	return Addr(uint64(b.Base) + b.Size() - 1)
}

// Contains reports whether a lies in b.
func (b Block) Contains(a Addr) bool {
	return a >= b.Base && a <= b.Last()
}

// Prefix returns b as a netip.Prefix.
func (b Block) Prefix() netip.Prefix {
	return netip.PrefixFrom(b.Base.Netip(), b.Bits)
}

func (b Block) String() string {
	return fmt.Sprintf("%s/%d", b.Base, b.Bits)
}

// run is an inclusive interval of addresses.
type run struct {
	first, last Addr
}

// Aggregate collapses s into the fewest blocks whose union is exactly s.
// Blocks are returned ascending by base and never overlap.
func Aggregate(s Set) []Block {
	return aggregateRuns(runsOf(s.Sorted()))
}

// AggregateBlocks collapses possibly overlapping or adjacent blocks into the
// fewest blocks covering the same addresses.
func AggregateBlocks(blocks []Block) []Block {
	if len(blocks) == 0 {
		return nil
	}

	sorted := slices.Clone(blocks)
	slices.SortFunc(sorted, func(a, b Block) int {
		if a.Base != b.Base {
			if a.Base < b.Base {
				return -1
			}
			return 1
		}
		// Larger block first so it swallows the ones it contains.
		return a.Bits - b.Bits
	})

	var runs []run
	for _, b := range sorted {
		if n := len(runs); n > 0 && uint64(b.Base) <= uint64(runs[n-1].last)+1 {
			if b.Last() > runs[n-1].last {
				runs[n-1].last = b.Last()
			}
			continue
		}
		runs = append(runs, run{first: b.Base, last: b.Last()})
	}
	return aggregateRuns(runs)
}

// runsOf groups ascending, duplicate-free addresses into maximal runs of
// consecutive values.
func runsOf(sorted []Addr) []run {
	var runs []run
	for _, a := range sorted {
		if n := len(runs); n > 0 && uint64(a) == uint64(runs[n-1].last)+1 {
			runs[n-1].last = a
			continue
		}
		runs = append(runs, run{first: a, last: a})
	}
	return runs
}

// aggregateRuns splits each run into the largest aligned blocks it contains.
// Runs never touch, so blocks from different runs are never merged.
func aggregateRuns(runs []run) []Block {
	var prefixes []netip.Prefix
	for _, r := range runs {
		prefixes = netipx.IPRangeFrom(r.first.Netip(), r.last.Netip()).AppendPrefixes(prefixes)
	}

	blocks := make([]Block, len(prefixes))
	for i, p := range prefixes {
		blocks[i] = BlockFrom(p)
	}
	return blocks
}

// BlockStrings renders blocks in canonical "a.b.c.d/n" form.
func BlockStrings(blocks []Block) []string {
	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = b.String()
	}
	return out
}

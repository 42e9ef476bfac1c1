// Package snowflake generates unique, monotonically increasing 64-bit
// identifiers that embed a millisecond timestamp, a machine id and a
// per-millisecond sequence counter.
//
// # Format
//
// An ID packs its fields most-significant first:
//
//	1 unused sign bit | 41-bit timestamp (ms since epoch) | machine id | sequence
//
// The machine id and sequence fields share the low 22 bits; their widths are
// configurable per generator as long as they sum to 22. With the default
// 10/12 split one generator mints up to 4096 ids per millisecond across up to
// 1024 machines, and the 41-bit timestamp lasts roughly 69 years past the
// configured epoch. Because the timestamp occupies the high bits, numeric
// order matches creation order.
//
// # Monotonicity
//
// A Generator guarantees per-instance monotonicity:
//   - If the clock has not yet reached the last recorded tick, NextID waits
//     for it instead of issuing a decreasing timestamp.
//   - If the sequence wraps within a millisecond, NextID waits for the next
//     millisecond before minting.
//
// Sequence exhaustion therefore throttles callers rather than failing them.
// Uniqueness across instances relies on each being configured with a
// distinct machine id; no coordination happens here. A system clock moved
// backward across process restarts is not detected.
//
// Usage
//
//	g, err := snowflake.New(snowflake.Options{
//	    MachineIDBits: 10,
//	    SequenceBits:  12,
//	    MachineID:     snowflake.FixedMachineID(42),
//	})
//	id := g.NextID()
//	parts := g.Decode(id)
//
// FirstIDAt and LastIDAt produce the smallest and largest possible id for a
// timestamp, useful as boundaries for range scans over id-ordered data.
package snowflake

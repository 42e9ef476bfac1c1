// Package idtool provides the `snowid` command-line tool.
//
// The CLI mints snowflake ids, decodes them back into their fields, and
// computes the boundary ids used to bracket a timestamp for range queries.
// It is primarily intended for developers and operators poking at
// id-ordered data.
//
// Installation
//
//	go install github.com/rathijitpapon/snowflakeid/cmd/snowid@latest
//
// # Generator configuration
//
// Every command accepts the same generator flags, layered over an optional
// config file (--config, JSON or YAML) and SNOWID_* environment variables,
// flags winning:
//
//	--machine-id-bits / --sequence-bits   payload split (must sum to 22;
//	                                      setting one derives the other)
//	--machine-id                          fixed machine id (default: derived
//	                                      from the first non-loopback
//	                                      interface's hardware address)
//	--epoch                               RFC3339 or unix milliseconds
//
// Usage
//
//	snowid generate
//	snowid generate -n 100 --machine-id 42
//
//	snowid decode 4194304
//	snowid decode 139930368413732865 139930368413732866
//
//	# boundary ids for a timestamp (RFC3339 or unix epoch milliseconds)
//	snowid bounds 2024-06-01T00:00:00Z
//	snowid bounds 1717200000000
//
// Notes
//
//   - generate prints one decimal id per line; decode and bounds print one
//     JSON object per line.
//   - decode interprets ids against the configured epoch and bit split;
//     decoding an id with a different layout than it was minted with yields
//     nonsense fields, not an error.
package idtool

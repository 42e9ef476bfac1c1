package snowflake

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"
)

const (
	// TimestampBits is the width of the relative-millisecond timestamp field.
	TimestampBits = 41

	// PayloadBits is the combined width of the machine id and sequence
	// fields. MachineIDBits + SequenceBits must equal this.
	PayloadBits = 22

	// MaxTimestamp is the largest relative timestamp an id can carry.
	MaxTimestamp = (1 << TimestampBits) - 1
)

// DefaultEpoch is the reference point used when Options.Epoch is zero.
var DefaultEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

var (
	// ErrInvalidConfig reports a construction-time invariant violation:
	// bad bit widths, an out-of-range machine id, or a bad epoch.
	ErrInvalidConfig = errors.New("snowflake: invalid configuration")

	// ErrTimestampBeforeEpoch reports a boundary-id query for a point in
	// time the generator cannot encode.
	ErrTimestampBeforeEpoch = errors.New("snowflake: timestamp precedes epoch")

	// ErrMalformedID reports decode input that is not a valid non-negative
	// 64-bit integer string.
	ErrMalformedID = errors.New("snowflake: malformed id")
)

// ID is a 64-bit snowflake identifier. Numeric order matches creation order
// for ids minted against the same epoch and bit layout.
type ID uint64

// String renders the id as a base-10 string, the canonical external form.
func (id ID) String() string { return strconv.FormatUint(uint64(id), 10) }

// ParseID parses a base-10 id string.
func ParseID(s string) (ID, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedID, s)
	}
	return ID(n), nil
}

// Parts are the decoded fields of an id. Timestamp is absolute, in the same
// clock domain as the generator's epoch, truncated to the millisecond.
type Parts struct {
	Timestamp time.Time
	MachineID int64
	Sequence  int64
}

// Options configure a Generator.
type Options struct {
	// MachineIDBits and SequenceBits split the 22-bit payload between the
	// machine id and sequence fields. Both must be positive and sum to 22.
	MachineIDBits int
	SequenceBits  int

	// MachineID supplies this instance's machine id. Nil selects the
	// default strategy: the hardware address of the host's first
	// non-loopback IPv4 interface, masked to the machine id width, or 0
	// when the host has no such interface.
	MachineID func() (int64, error)

	// Epoch is the reference point for the timestamp field. Zero selects
	// DefaultEpoch. It must not precede the Unix epoch or lie in the future.
	Epoch time.Time

	// Now reports the current wall clock in Unix milliseconds. Nil selects
	// the system clock; tests inject their own.
	Now func() int64
}

// FixedMachineID returns a machine id strategy that always yields id.
func FixedMachineID(id int64) func() (int64, error) {
	return func() (int64, error) { return id, nil }
}

// Generator mints monotonically increasing ids. One instance owns its
// lastMs/sequence state exclusively; the mutex makes the read-modify-write
// in NextID atomic so a single instance may be shared by goroutines.
type Generator struct {
	mu sync.Mutex

	epochMs      int64
	machineBits  uint
	seqBits      uint
	machineID    int64
	maxMachineID int64
	maxSequence  int64
	nowMs        func() int64

	lastMs   int64 // absolute ms of the most recently issued id
	sequence int64
}

// New validates opts and constructs a Generator.
func New(opts Options) (*Generator, error) {
	if opts.MachineIDBits <= 0 || opts.SequenceBits <= 0 {
		return nil, fmt.Errorf("%w: machine id bits (%d) and sequence bits (%d) must be positive",
			ErrInvalidConfig, opts.MachineIDBits, opts.SequenceBits)
	}
	if opts.MachineIDBits+opts.SequenceBits != PayloadBits {
		return nil, fmt.Errorf("%w: machine id bits (%d) + sequence bits (%d) must equal %d",
			ErrInvalidConfig, opts.MachineIDBits, opts.SequenceBits, PayloadBits)
	}

	nowMs := opts.Now
	if nowMs == nil {
		nowMs = func() int64 { return time.Now().UnixMilli() }
	}

	epoch := opts.Epoch
	if epoch.IsZero() {
		epoch = DefaultEpoch
	}
	epochMs := epoch.UnixMilli()
	if epochMs < 0 || epochMs > nowMs() {
		return nil, fmt.Errorf("%w: epoch %s must lie between 1970-01-01T00:00:00Z and now",
			ErrInvalidConfig, epoch.UTC().Format(time.RFC3339))
	}

	g := &Generator{
		epochMs:      epochMs,
		machineBits:  uint(opts.MachineIDBits),
		seqBits:      uint(opts.SequenceBits),
		maxMachineID: int64(-1 ^ (-1 << uint(opts.MachineIDBits))),
		maxSequence:  int64(-1 ^ (-1 << uint(opts.SequenceBits))),
		nowMs:        nowMs,
		lastMs:       epochMs,
	}

	if opts.MachineID != nil {
		id, err := opts.MachineID()
		if err != nil {
			return nil, fmt.Errorf("%w: machine id: %v", ErrInvalidConfig, err)
		}
		if id < 0 || id > g.maxMachineID {
			return nil, fmt.Errorf("%w: machine id %d out of range [0, %d]",
				ErrInvalidConfig, id, g.maxMachineID)
		}
		g.machineID = id
	} else {
		g.machineID = interfaceMachineID(g.maxMachineID)
	}
	return g, nil
}

// NextID mints a new id, unique and strictly greater than every id this
// instance has issued. When the sequence space for the current millisecond
// is exhausted, or the clock has not yet reached the last recorded tick,
// NextID waits for the clock rather than erroring.
func (g *Generator) NextID() ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.nowMs()
	for ms < g.lastMs {
		time.Sleep(time.Millisecond / 8)
		ms = g.nowMs()
	}

	if ms == g.lastMs {
		g.sequence = (g.sequence + 1) & g.maxSequence
		if g.sequence == 0 {
			// sequence space exhausted within this millisecond
			for ms <= g.lastMs {
				time.Sleep(time.Millisecond / 8)
				ms = g.nowMs()
			}
		}
	} else {
		g.sequence = 0
	}
	g.lastMs = ms

	return g.compose(ms-g.epochMs, g.machineID, g.sequence)
}

// FirstIDAt returns the smallest possible id whose timestamp field encodes t,
// with the machine id and sequence fields forced to zero. Together with
// LastIDAt it brackets every id a cooperating fleet could mint during t's
// millisecond, which makes the pair usable as range-scan boundaries.
func (g *Generator) FirstIDAt(t time.Time) (ID, error) {
	rel, err := g.relativeMs(t)
	if err != nil {
		return 0, err
	}
	return g.compose(rel, 0, 0), nil
}

// LastIDAt returns the largest possible id whose timestamp field encodes t,
// with the machine id and sequence fields forced to their maxima.
func (g *Generator) LastIDAt(t time.Time) (ID, error) {
	rel, err := g.relativeMs(t)
	if err != nil {
		return 0, err
	}
	return g.compose(rel, g.maxMachineID, g.maxSequence), nil
}

// Decode splits an id back into its timestamp, machine id and sequence
// fields, interpreted against this generator's epoch and bit layout.
func (g *Generator) Decode(id ID) Parts {
	v := uint64(id)
	return Parts{
		Timestamp: time.UnixMilli(g.epochMs + int64(v>>PayloadBits)).UTC(),
		MachineID: int64(v>>g.seqBits) & g.maxMachineID,
		Sequence:  int64(v) & g.maxSequence,
	}
}

// DecodeString parses a base-10 id string and decodes it.
func (g *Generator) DecodeString(s string) (Parts, error) {
	id, err := ParseID(s)
	if err != nil {
		return Parts{}, err
	}
	return g.Decode(id), nil
}

// MachineID reports the machine id this instance stamps into every id.
func (g *Generator) MachineID() int64 { return g.machineID }

// MaxMachineID reports the largest machine id the configured width admits.
func (g *Generator) MaxMachineID() int64 { return g.maxMachineID }

// MaxSequence reports the largest per-millisecond sequence value.
func (g *Generator) MaxSequence() int64 { return g.maxSequence }

// Epoch reports the generator's reference point in time.
func (g *Generator) Epoch() time.Time { return time.UnixMilli(g.epochMs).UTC() }

func (g *Generator) compose(rel, machine, seq int64) ID {
	return ID(uint64(rel)<<PayloadBits | uint64(machine)<<g.seqBits | uint64(seq))
}

func (g *Generator) relativeMs(t time.Time) (int64, error) {
	ms := t.UnixMilli()
	if ms < g.epochMs {
		return 0, fmt.Errorf("%w: %s is before %s",
			ErrTimestampBeforeEpoch,
			t.UTC().Format(time.RFC3339Nano),
			g.Epoch().Format(time.RFC3339Nano))
	}
	return ms - g.epochMs, nil
}

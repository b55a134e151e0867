package diag

import (
	"fmt"
	"sort"
)

// Bag is an append-only collection of diagnostics produced over the course
// of a single compilation. Per spec §5, a compilation is a synchronous,
// single-threaded, deterministic function of its input: the bag is a plain
// value owned by the caller of compiler.Compile, not a package-level
// singleton, so that independent compilations can run concurrently at the
// process level without interfering with each other's diagnostics.
//
// The bag never clears itself across phases within one run (spec §3's
// monotone invariant): every phase appends and keeps going.
type Bag struct {
	items []Diagnostic
	file  string
}

// NewBag creates an empty diagnostic bag that stamps every diagnostic it
// records with file, the source's display name.
func NewBag(file string) *Bag {
	return &Bag{file: file}
}

// Add appends a diagnostic to the bag.
func (b *Bag) Add(d Diagnostic) {
	b.items = append(b.items, d)
}

// Errorf appends an Error-severity diagnostic at pos.
func (b *Bag) Errorf(pos Position, format string, args ...interface{}) {
	b.add(Error, pos, format, args...)
}

// Warnf appends a Warning-severity diagnostic at pos.
func (b *Bag) Warnf(pos Position, format string, args ...interface{}) {
	b.add(Warning, pos, format, args...)
}

// Infof appends an Info-severity diagnostic at pos.
func (b *Bag) Infof(pos Position, format string, args ...interface{}) {
	b.add(Info, pos, format, args...)
}

func (b *Bag) add(sev Severity, pos Position, format string, args ...interface{}) {
	b.items = append(b.items, Diagnostic{
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
		Pos:      pos,
		File:     b.file,
	})
}

// HasErrors reports whether any Error-severity diagnostic has been recorded.
// The emitter (spec §4.4, §7) consults this to decide whether to run at all.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity == Error {
			return true
		}
	}

	return false
}

// ErrorCount and WarningCount are used by driver-level summaries (§6.1).
func (b *Bag) ErrorCount() int {
	n := 0
	for _, d := range b.items {
		if d.Severity == Error {
			n++
		}
	}
	return n
}

func (b *Bag) WarningCount() int {
	n := 0
	for _, d := range b.items {
		if d.Severity == Warning {
			n++
		}
	}
	return n
}

// Len returns the number of diagnostics recorded, insertion order.
func (b *Bag) Len() int {
	return len(b.items)
}

// All returns the diagnostics in insertion (source-pass) order.
func (b *Bag) All() []Diagnostic {
	return b.items
}

// Sorted returns a stable-sorted copy of the diagnostics, ordered by
// (line, column) per spec §5's "stable sort keyed on (line, column)".
func (b *Bag) Sorted() []Diagnostic {
	out := make([]Diagnostic, len(b.items))
	copy(out, b.items)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Pos.Before(out[j].Pos)
	})

	return out
}

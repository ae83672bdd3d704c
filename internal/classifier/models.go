package classifier

import (
	"math/bits"

	"parcelsort/internal/parcel"
)

// Flag is a single classification attribute of a package.
type Flag uint8

const (
	Bulky Flag = 1 << iota
	Heavy
)

var allFlags = [...]Flag{Bulky, Heavy}

func (f Flag) String() string {
	switch f {
	case Bulky:
		return "BULKY"
	case Heavy:
		return "HEAVY"
	default:
		return "UNKNOWN"
	}
}

// Set is an unordered, duplicate-free set of flags stored as a bit mask.
type Set uint8

// NewSet builds a Set from the given flags.
func NewSet(flags ...Flag) Set {
	var s Set
	for _, f := range flags {
		s = s.With(f)
	}
	return s
}

func (s Set) With(f Flag) Set { return s | Set(f) }
func (s Set) Has(f Flag) bool { return s&Set(f) != 0 }
func (s Set) IsEmpty() bool   { return s == 0 }
func (s Set) Len() int        { return bits.OnesCount8(uint8(s)) }

// Flags lists the members in a stable order: BULKY before HEAVY.
func (s Set) Flags() []Flag {
	out := make([]Flag, 0, len(allFlags))
	for _, f := range allFlags {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// Strings returns the flag names in the order of Flags. An empty set yields an
// empty, non-nil slice so it encodes as [] in JSON.
func (s Set) Strings() []string {
	flags := s.Flags()
	out := make([]string, len(flags))
	for i, f := range flags {
		out[i] = f.String()
	}
	return out
}

// Decision is the stack a package is routed to.
type Decision string

const (
	DecisionStandard Decision = "STANDARD"
	DecisionSpecial  Decision = "SPECIAL"
	DecisionRejected Decision = "REJECTED"
)

// Reason is the one-line summary of which flags drove the decision.
type Reason string

const (
	ReasonStandard      Reason = "STANDARD"
	ReasonBulkyOnly     Reason = "BULKY only"
	ReasonHeavyOnly     Reason = "HEAVY only"
	ReasonBulkyAndHeavy Reason = "BULKY and HEAVY"
)

// Request carries the raw, unvalidated measurements of a package.
type Request struct {
	Width  int
	Height int
	Length int
	Mass   float64
}

// Result is the outcome of classifying one package.
type Result struct {
	Package        parcel.Package
	Classification Set
	Decision       Decision
	Reason         Reason
	Remarks        []string
}

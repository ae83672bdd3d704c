package classifier

import (
	"fmt"

	"parcelsort/internal/parcel"
)

const (
	// BulkyVolumeLimit is the volume in cm³ at or above which a package is bulky.
	BulkyVolumeLimit int64 = 1_000_000
	// BulkyDimensionLimit is the side length in cm at or above which a package is bulky.
	BulkyDimensionLimit = 150
	// HeavyMassLimit is the mass in grams at or above which a package is heavy.
	HeavyMassLimit = 20_000.0
)

var (
	RemarkDimensionExceeded = fmt.Sprintf("Dimension >= %dcm", BulkyDimensionLimit)
	RemarkVolumeExceeded    = fmt.Sprintf("Volume >= %dcm³", BulkyVolumeLimit)
	RemarkMassExceeded      = fmt.Sprintf("Weight >= %dg", int(HeavyMassLimit))
	RemarkNone              = "Not bulky nor heavy"
)

// Classify derives the flag set of a valid package.
// Pure domain logic: no I/O, no side effects.
func Classify(p parcel.Package) Set {
	var s Set
	if exceedsDimension(p.Dimension()) || exceedsVolume(p.Dimension()) {
		s = s.With(Bulky)
	}
	if p.Mass() >= HeavyMassLimit {
		s = s.With(Heavy)
	}
	return s
}

func exceedsDimension(d parcel.Dimension) bool {
	return d.Longest() >= BulkyDimensionLimit
}

func exceedsVolume(d parcel.Dimension) bool {
	return d.Volume() >= BulkyVolumeLimit
}

// Decide maps a flag set to a stack decision:
//  1. no flags -> STANDARD
//  2. exactly one flag -> SPECIAL
//  3. BULKY and HEAVY -> REJECTED
func Decide(s Set) Decision {
	switch {
	case s.IsEmpty():
		return DecisionStandard
	case s.Has(Bulky) && s.Has(Heavy):
		return DecisionRejected
	default:
		return DecisionSpecial
	}
}

// ReasonFor summarizes which flags are present.
func ReasonFor(s Set) Reason {
	switch {
	case s.Has(Bulky) && s.Has(Heavy):
		return ReasonBulkyAndHeavy
	case s.Has(Bulky):
		return ReasonBulkyOnly
	case s.Has(Heavy):
		return ReasonHeavyOnly
	default:
		return ReasonStandard
	}
}

// Remarks explains which thresholds produced s. Both bulky triggers are listed
// when both apply. Remarks are advisory and never feed back into Decide.
func Remarks(p parcel.Package, s Set) []string {
	remarks := make([]string, 0, 3)
	if s.Has(Bulky) {
		if exceedsDimension(p.Dimension()) {
			remarks = append(remarks, RemarkDimensionExceeded)
		}
		if exceedsVolume(p.Dimension()) {
			remarks = append(remarks, RemarkVolumeExceeded)
		}
	}
	if s.Has(Heavy) {
		remarks = append(remarks, RemarkMassExceeded)
	}
	if len(remarks) == 0 {
		remarks = append(remarks, RemarkNone)
	}
	return remarks
}

// Evaluate runs the full rule chain for a valid package.
func Evaluate(p parcel.Package) Result {
	s := Classify(p)
	return Result{
		Package:        p,
		Classification: s,
		Decision:       Decide(s),
		Reason:         ReasonFor(s),
		Remarks:        Remarks(p, s),
	}
}

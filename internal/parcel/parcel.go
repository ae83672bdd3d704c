// Package parcel holds the validated value objects that describe a physical
// package: its dimensions in centimeters and its mass in grams.
//
// Values are only obtainable through New and NewDimension, so any Package in
// circulation already satisfies its invariants.
package parcel

import (
	"errors"
	"math"
	"strconv"

	dErrors "parcelsort/pkg/domain-errors"
)

var (
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrInvalidMass      = errors.New("invalid mass")
)

// Package is an immutable dimension + mass pair.
type Package struct {
	dimension Dimension
	mass      float64
}

// New validates the raw inputs and returns a Package. Dimensions are checked
// before mass.
func New(width, height, length int, mass float64) (Package, error) {
	dim, err := NewDimension(width, height, length)
	if err != nil {
		return Package{}, err
	}
	if err := validateMass(mass); err != nil {
		return Package{}, err
	}
	return Package{dimension: dim, mass: mass}, nil
}

func validateMass(mass float64) error {
	if math.IsNaN(mass) || math.IsInf(mass, 0) {
		return dErrors.Wrap(ErrInvalidMass, dErrors.CodeInvalidMass,
			"mass must be a finite number, got "+formatMass(mass))
	}
	if mass <= 0 {
		return dErrors.Wrap(ErrInvalidMass, dErrors.CodeInvalidMass,
			"mass must be greater than 0, got "+formatMass(mass))
	}
	return nil
}

func formatMass(mass float64) string {
	return strconv.FormatFloat(mass, 'g', -1, 64)
}

// Dimension returns the validated sides.
func (p Package) Dimension() Dimension { return p.dimension }

// Mass returns the mass in grams.
func (p Package) Mass() float64 { return p.mass }

package parcel

import (
	"math"
	"math/bits"
	"strconv"

	dErrors "parcelsort/pkg/domain-errors"
)

// Dimension is the width, height and length of a package in centimeters.
type Dimension struct {
	width  int
	height int
	length int
}

// NewDimension returns a Dimension or an invalid_dimension error naming the
// first non-positive side.
func NewDimension(width, height, length int) (Dimension, error) {
	for _, side := range []struct {
		name  string
		value int
	}{
		{"width", width},
		{"height", height},
		{"length", length},
	} {
		if side.value <= 0 {
			return Dimension{}, dErrors.Wrap(ErrInvalidDimension, dErrors.CodeInvalidDimension,
				side.name+" must be greater than 0, got "+strconv.Itoa(side.value))
		}
	}
	return Dimension{width: width, height: height, length: length}, nil
}

// Width returns the width in centimeters.
func (d Dimension) Width() int { return d.width }

// Height returns the height in centimeters.
func (d Dimension) Height() int { return d.height }

// Length returns the length in centimeters.
func (d Dimension) Length() int { return d.length }

// Volume returns width*height*length in cubic centimeters, saturating at
// math.MaxInt64 when the product does not fit.
func (d Dimension) Volume() int64 {
	hi, area := bits.Mul64(uint64(d.width), uint64(d.height))
	if hi != 0 {
		return math.MaxInt64
	}
	hi, vol := bits.Mul64(area, uint64(d.length))
	if hi != 0 || vol > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(vol)
}

// Longest returns the largest of the three sides.
func (d Dimension) Longest() int {
	return max(d.width, d.height, d.length)
}

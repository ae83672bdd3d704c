package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"parcelsort/internal/classifier"
	dErrors "parcelsort/pkg/domain-errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// MeasurementParams holds the measurements as they arrive in a query string or
// path segments. Range checks belong to the domain; this layer only checks
// presence and numeric syntax.
type MeasurementParams struct {
	Width  string `validate:"required"`
	Height string `validate:"required"`
	Length string `validate:"required"`
	Mass   string `validate:"required"`

	parsed classifier.Request
}

// Validate checks presence, parses the numbers and keeps the result for
// Parsed.
func (p *MeasurementParams) Validate() error {
	if p == nil {
		return dErrors.New(dErrors.CodeBadRequest, "measurements are required")
	}
	p.Width = strings.TrimSpace(p.Width)
	p.Height = strings.TrimSpace(p.Height)
	p.Length = strings.TrimSpace(p.Length)
	p.Mass = strings.TrimSpace(p.Mass)

	if err := validate.Struct(p); err != nil {
		return validationError(err)
	}

	var err error
	if p.parsed.Width, err = parseCentimeters("width", p.Width); err != nil {
		return err
	}
	if p.parsed.Height, err = parseCentimeters("height", p.Height); err != nil {
		return err
	}
	if p.parsed.Length, err = parseCentimeters("length", p.Length); err != nil {
		return err
	}
	mass, err := strconv.ParseFloat(p.Mass, 64)
	if err != nil {
		return dErrors.Newf(dErrors.CodeBadRequest, "mass must be a number, got %q", p.Mass)
	}
	p.parsed.Mass = mass
	return nil
}

// Parsed returns the measurements populated by Validate.
func (p *MeasurementParams) Parsed() classifier.Request {
	return p.parsed
}

func parseCentimeters(field, raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, dErrors.Newf(dErrors.CodeBadRequest, "%s must be an integer, got %q", field, raw)
	}
	return v, nil
}

// ClassifyRequest is the JSON body for POST /api/v1/packages/classify.
type ClassifyRequest struct {
	Width  *int     `json:"width" validate:"required"`
	Height *int     `json:"height" validate:"required"`
	Length *int     `json:"length" validate:"required"`
	Mass   *float64 `json:"mass" validate:"required"`
}

// Validate checks that every field is present. Implements the Validatable
// interface for httputil.DecodeAndPrepare.
func (r *ClassifyRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if err := validate.Struct(r); err != nil {
		return validationError(err)
	}
	return nil
}

// ToDomain converts a validated body into a classifier request.
func (r *ClassifyRequest) ToDomain() classifier.Request {
	return classifier.Request{
		Width:  *r.Width,
		Height: *r.Height,
		Length: *r.Length,
		Mass:   *r.Mass,
	}
}

// validationError reports the first failing field, lower-cased to match the
// public parameter names.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("%s is %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid request")
}

package handler

import (
	"time"

	"parcelsort/internal/classifier"
)

// ClassifyResponse is the HTTP response for the classify endpoints.
type ClassifyResponse struct {
	Package        PackageResponse `json:"package"`
	Decision       string          `json:"decision"`
	Classification []string        `json:"classification"`
	Reason         string          `json:"reason"`
	Remarks        []string        `json:"remarks"`
	Timestamp      time.Time       `json:"timestamp"`
}

// PackageResponse echoes the validated input together with its volume.
type PackageResponse struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Length int     `json:"length"`
	Mass   float64 `json:"mass"`
	Volume int64   `json:"volume"`
}

// FromResult converts a classifier Result to an HTTP response.
func FromResult(result *classifier.Result, at time.Time) *ClassifyResponse {
	dim := result.Package.Dimension()
	return &ClassifyResponse{
		Package: PackageResponse{
			Width:  dim.Width(),
			Height: dim.Height(),
			Length: dim.Length(),
			Mass:   result.Package.Mass(),
			Volume: dim.Volume(),
		},
		Decision:       string(result.Decision),
		Classification: result.Classification.Strings(),
		Reason:         string(result.Reason),
		Remarks:        result.Remarks,
		Timestamp:      at.UTC(),
	}
}

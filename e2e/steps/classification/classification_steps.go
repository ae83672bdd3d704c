package classification

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	GET(path string) error
	GetResponseField(field string) (any, error)
	GetLastResponseStatus() int
}

// RegisterSteps registers classification step definitions.
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &classificationSteps{tc: tc}

	ctx.Step(`^I classify a package of (-?\d+)x(-?\d+)x(-?\d+) cm weighing (\S+) g$`, steps.classifyByQuery)
	ctx.Step(`^I classify a package by path of (-?\d+)x(-?\d+)x(-?\d+) cm weighing (\S+) g$`, steps.classifyByPath)
	ctx.Step(`^I check the service health$`, steps.checkHealth)
	ctx.Step(`^the response status should be (\d+)$`, steps.statusShouldBe)
	ctx.Step(`^the decision should be "([^"]*)"$`, steps.decisionShouldBe)
	ctx.Step(`^the classification should be "([^"]*)"$`, steps.classificationShouldBe)
	ctx.Step(`^the error should be "([^"]*)"$`, steps.errorShouldBe)
	ctx.Step(`^the status field should be "([^"]*)"$`, steps.statusFieldShouldBe)
}

type classificationSteps struct {
	tc TestContext
}

func (s *classificationSteps) classifyByQuery(ctx context.Context, width, height, length int, mass string) error {
	return s.tc.GET(fmt.Sprintf("/api/v1/packages/classify?width=%d&height=%d&length=%d&mass=%s", width, height, length, mass))
}

func (s *classificationSteps) classifyByPath(ctx context.Context, width, height, length int, mass string) error {
	return s.tc.GET(fmt.Sprintf("/api/v1/packages/classify/%d/%d/%d/%s", width, height, length, mass))
}

func (s *classificationSteps) checkHealth(ctx context.Context) error {
	return s.tc.GET("/health")
}

func (s *classificationSteps) statusShouldBe(ctx context.Context, expected int) error {
	if got := s.tc.GetLastResponseStatus(); got != expected {
		return fmt.Errorf("expected status %d, got %d", expected, got)
	}
	return nil
}

func (s *classificationSteps) decisionShouldBe(ctx context.Context, expected string) error {
	return s.fieldShouldBe("decision", expected)
}

func (s *classificationSteps) errorShouldBe(ctx context.Context, expected string) error {
	return s.fieldShouldBe("error", expected)
}

func (s *classificationSteps) statusFieldShouldBe(ctx context.Context, expected string) error {
	return s.fieldShouldBe("status", expected)
}

// classificationShouldBe compares against a comma-separated list; an empty
// string means no flags.
func (s *classificationSteps) classificationShouldBe(ctx context.Context, expected string) error {
	v, err := s.tc.GetResponseField("classification")
	if err != nil {
		return err
	}
	raw, ok := v.([]any)
	if !ok {
		return fmt.Errorf("classification is %T, want array", v)
	}
	got := make([]string, 0, len(raw))
	for _, f := range raw {
		got = append(got, fmt.Sprint(f))
	}
	want := []string{}
	if expected != "" {
		want = strings.Split(expected, ",")
	}
	if !slices.Equal(got, want) {
		return fmt.Errorf("expected classification %v, got %v", want, got)
	}
	return nil
}

func (s *classificationSteps) fieldShouldBe(field, expected string) error {
	v, err := s.tc.GetResponseField(field)
	if err != nil {
		return err
	}
	if got := fmt.Sprint(v); got != expected {
		return fmt.Errorf("expected %s %q, got %q", field, expected, got)
	}
	return nil
}

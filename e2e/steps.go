package e2e

import (
	"github.com/cucumber/godog"

	"parcelsort/e2e/steps/classification"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	classification.RegisterSteps(ctx, tc)
}

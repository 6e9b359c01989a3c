package e2e

import (
	"github.com/cucumber/godog"

	"pokedex/e2e/steps/navigation"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	navigation.RegisterSteps(ctx, tc)
}

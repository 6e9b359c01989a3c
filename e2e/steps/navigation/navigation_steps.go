package navigation

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	POST(path string, body any) error
	GET(path string) error
	StatusCode() int
	Header(key string) string
	RecordField(field string) (string, error)
	CurrentID() (int, bool)
	SetOutage(down bool)
	EntityHits() int
}

// RegisterSteps registers navigation step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &navigationSteps{tc: tc}

	ctx.Step(`^the pokedex has started$`, steps.start)
	ctx.Step(`^the catalog is down$`, steps.catalogDown)
	ctx.Step(`^the catalog is back up$`, steps.catalogUp)
	ctx.Step(`^I look at the current entry$`, steps.current)
	ctx.Step(`^I step forward$`, steps.forward)
	ctx.Step(`^I step forward (\d+) times$`, steps.forwardTimes)
	ctx.Step(`^I step back$`, steps.backward)
	ctx.Step(`^I search for "([^"]*)"$`, steps.search)
	ctx.Step(`^I am at entry (\d+)$`, steps.jumpTo)

	ctx.Step(`^the status should be (\d+)$`, steps.statusShouldBe)
	ctx.Step(`^the label should be "([^"]*)"$`, steps.labelShouldBe)
	ctx.Step(`^the record should be "([^"]*)"$`, steps.recordStatusShouldBe)
	ctx.Step(`^the record "([^"]*)" should be "([^"]*)"$`, steps.recordFieldShouldBe)
	ctx.Step(`^the current entry should be (\d+)$`, steps.currentShouldBe)
	ctx.Step(`^there should be no current entry$`, steps.noCurrent)
	ctx.Step(`^the catalog should report degraded$`, steps.degraded)
	ctx.Step(`^the catalog should have served (\d+) entity requests$`, steps.entityHits)
}

type navigationSteps struct {
	tc TestContext
}

func (s *navigationSteps) start(ctx context.Context) error {
	return s.tc.POST("/pokedex/start", nil)
}

func (s *navigationSteps) catalogDown(ctx context.Context) error {
	s.tc.SetOutage(true)
	return nil
}

func (s *navigationSteps) catalogUp(ctx context.Context) error {
	s.tc.SetOutage(false)
	return nil
}

func (s *navigationSteps) current(ctx context.Context) error {
	return s.tc.GET("/pokedex/current")
}

func (s *navigationSteps) forward(ctx context.Context) error {
	return s.tc.POST("/pokedex/forward", nil)
}

func (s *navigationSteps) forwardTimes(ctx context.Context, n int) error {
	for range n {
		if err := s.forward(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *navigationSteps) backward(ctx context.Context) error {
	return s.tc.POST("/pokedex/backward", nil)
}

func (s *navigationSteps) search(ctx context.Context, query string) error {
	return s.tc.POST("/pokedex/search", map[string]string{"query": query})
}

func (s *navigationSteps) jumpTo(ctx context.Context, id int) error {
	if err := s.search(ctx, fmt.Sprint(id)); err != nil {
		return err
	}
	return s.currentShouldBe(ctx, id)
}

func (s *navigationSteps) statusShouldBe(ctx context.Context, status int) error {
	if got := s.tc.StatusCode(); got != status {
		return fmt.Errorf("expected status %d, got %d", status, got)
	}
	return nil
}

func (s *navigationSteps) labelShouldBe(ctx context.Context, label string) error {
	return s.recordFieldShouldBe(ctx, "label", label)
}

func (s *navigationSteps) recordStatusShouldBe(ctx context.Context, status string) error {
	return s.recordFieldShouldBe(ctx, "status", strings.ReplaceAll(status, " ", "_"))
}

func (s *navigationSteps) recordFieldShouldBe(ctx context.Context, field, want string) error {
	got, err := s.tc.RecordField(field)
	if err != nil {
		return err
	}
	want = strings.ReplaceAll(want, `\n`, "\n")
	if got != want {
		return fmt.Errorf("expected %s %q, got %q", field, want, got)
	}
	return nil
}

func (s *navigationSteps) currentShouldBe(ctx context.Context, id int) error {
	got, ok := s.tc.CurrentID()
	if !ok {
		return fmt.Errorf("expected current entry %d, got none", id)
	}
	if got != id {
		return fmt.Errorf("expected current entry %d, got %d", id, got)
	}
	return nil
}

func (s *navigationSteps) noCurrent(ctx context.Context) error {
	if got, ok := s.tc.CurrentID(); ok {
		return fmt.Errorf("expected no current entry, got %d", got)
	}
	return nil
}

func (s *navigationSteps) degraded(ctx context.Context) error {
	if got := s.tc.Header("X-Catalog-Status"); got != "degraded" {
		return fmt.Errorf("expected degraded catalog header, got %q", got)
	}
	return nil
}

func (s *navigationSteps) entityHits(ctx context.Context, n int) error {
	if got := s.tc.EntityHits(); got != n {
		return fmt.Errorf("expected %d entity requests, got %d", n, got)
	}
	return nil
}

// Package staticdata serves the demo catalogue (plans, ideas, task
// templates, SEO checklist) from JSON embedded at build time. This is
// configuration data, not business logic.
package staticdata

import (
	"embed"
	"encoding/json"
	"fmt"

	"luminai/models"
)

//go:embed plans.json ideas.json tasks.json seo.json
var files embed.FS

var (
	plans         []models.Plan
	ideas         []string
	taskTemplates []models.TaskTemplate
	seoChecklist  []string
)

// Load parses the embedded catalogue. Called once at startup; a failure
// here is a build defect, not a runtime condition.
func Load() error {
	if err := parse("plans.json", &plans); err != nil {
		return err
	}
	if err := parse("ideas.json", &ideas); err != nil {
		return err
	}
	if err := parse("tasks.json", &taskTemplates); err != nil {
		return err
	}
	return parse("seo.json", &seoChecklist)
}

func parse(name string, v interface{}) error {
	data, err := files.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func Plans() []models.Plan { return plans }

func Ideas() []string { return ideas }

func TaskTemplates() []models.TaskTemplate { return taskTemplates }

func SEOChecklist() []string { return seoChecklist }

// Package importer loads an assignment and its tasks from a YAML document
// and schedules the tasks through the planner.
package importer

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kasunala/studyflow/internal/assignment"
	"github.com/kasunala/studyflow/internal/dateutil"
	"github.com/kasunala/studyflow/internal/planner"
)

// YAMLTask represents a single task in the YAML input.
type YAMLTask struct {
	Title    string `yaml:"title"`
	Date     string `yaml:"date"`     // YYYY-MM-DD
	Start    string `yaml:"start"`    // HH:MM
	Duration int    `yaml:"duration"` // minutes
}

// YAMLAssignment represents the assignment header of the YAML input.
type YAMLAssignment struct {
	Title   string `yaml:"title"`
	Subject string `yaml:"subject,omitempty"`
	DueDate string `yaml:"due_date,omitempty"`
}

// YAMLInput represents the root structure of the YAML input.
type YAMLInput struct {
	Assignment YAMLAssignment `yaml:"assignment"`
	Tasks      []YAMLTask     `yaml:"tasks"`
}

// Result summarizes an import: every task runs through the normal placement
// pipeline, so some may land on alternative slots.
type Result struct {
	Assignment  *assignment.Assignment
	Placed      int
	Rescheduled int
}

// Import parses a YAML document, creates the assignment and places each task
// on the calendar. Conflicting tasks are relocated by the slot search like
// any other placement.
func Import(ctx context.Context, svc *assignment.Service, pl *planner.Planner, data []byte) (*Result, error) {
	var input YAMLInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}

	if input.Assignment.Title == "" {
		return nil, fmt.Errorf("assignment title is required")
	}
	if len(input.Tasks) == 0 {
		return nil, fmt.Errorf("no tasks found in YAML")
	}

	var due *time.Time
	if input.Assignment.DueDate != "" {
		d, err := dateutil.ParseDate(input.Assignment.DueDate)
		if err != nil {
			return nil, fmt.Errorf("assignment due_date: %w", err)
		}
		due = &d
	}

	a, err := svc.Create(ctx, input.Assignment.Title, input.Assignment.Subject, due)
	if err != nil {
		return nil, err
	}

	result := &Result{Assignment: a}
	for _, yt := range input.Tasks {
		if yt.Title == "" {
			return result, fmt.Errorf("task title is required")
		}
		date, err := dateutil.ParseDate(yt.Date)
		if err != nil {
			return result, fmt.Errorf("task %q date: %w", yt.Title, err)
		}

		res, err := pl.Place(ctx, planner.Request{
			Title:    yt.Title,
			OwnerID:  a.ID,
			Date:     date,
			Start:    yt.Start,
			Duration: yt.Duration,
		})
		if err != nil {
			return result, fmt.Errorf("placing task %q: %w", yt.Title, err)
		}
		result.Placed++
		if res.Status == planner.StatusRescheduled {
			result.Rescheduled++
		}
	}
	return result, nil
}

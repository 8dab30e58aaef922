// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import (
	"math"
	"strconv"
	"strings"

	"github.com/danielhkuo/roi-survey/models"
)

// Field error messages
const (
	MsgRequired      = "This field is required"
	MsgInvalidNumber = "Please enter a valid number"
)

// Result is the outcome of validating one section.
type Result struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Section checks the questions of a single section against the responses.
// Questions in other sections are never inspected. Each question gets at
// most one error; the required check runs before the numeric checks.
func Section(section models.Section, responses models.Responses) Result {
	errs := make(map[string]string)
	for _, q := range section.Questions {
		if msg := question(q, responses[q.ID]); msg != "" {
			errs[q.ID] = msg
		}
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}

func question(q models.Question, a models.Answer) string {
	empty := a.IsEmpty()
	if q.Required && empty {
		return MsgRequired
	}
	if q.Type != models.TypeNumber || empty {
		return ""
	}
	return number(q, a)
}

func number(q models.Question, a models.Answer) string {
	if a.Kind() == models.KindList {
		return MsgInvalidNumber
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(a.Text()), 64)
	if err != nil || math.IsNaN(v) {
		return MsgInvalidNumber
	}
	if q.Min != nil && v < *q.Min {
		return "Value must be at least " + formatBound(*q.Min)
	}
	if q.Max != nil && v > *q.Max {
		return "Value must not exceed " + formatBound(*q.Max)
	}
	return ""
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

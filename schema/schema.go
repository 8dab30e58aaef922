// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/roi-survey/models"
)

//go:embed roi_survey.yaml
var defaultYAML []byte

var ErrInvalidSchema = errors.New("invalid survey schema")

// Schema is the ordered list of form sections. The step index of a
// section is its position in the list.
type Schema struct {
	sections []models.Section
	byID     map[string]models.Question
}

// Default returns the built-in ROI questionnaire.
func Default() *Schema {
	s, err := Load(bytes.NewReader(defaultYAML))
	if err != nil {
		panic(fmt.Sprintf("embedded survey schema: %v", err))
	}
	return s
}

// LoadFile reads a schema from a YAML file.
func LoadFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schema: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes and checks a YAML schema document.
func Load(r io.Reader) (*Schema, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode schema: %w", err)
	}
	return New(doc.sections())
}

// New builds a schema from sections, rejecting inconsistent definitions.
func New(sections []models.Section) (*Schema, error) {
	if len(sections) == 0 {
		return nil, fmt.Errorf("%w: no sections", ErrInvalidSchema)
	}

	byID := make(map[string]models.Question)
	for i, sec := range sections {
		if sec.Name == "" {
			return nil, fmt.Errorf("%w: section %d has no name", ErrInvalidSchema, i)
		}
		for _, q := range sec.Questions {
			if err := checkQuestion(q); err != nil {
				return nil, fmt.Errorf("%w: section %q: %v", ErrInvalidSchema, sec.Name, err)
			}
			if _, dup := byID[q.ID]; dup {
				return nil, fmt.Errorf("%w: duplicate question id %q", ErrInvalidSchema, q.ID)
			}
			byID[q.ID] = q
		}
	}

	return &Schema{sections: sections, byID: byID}, nil
}

func checkQuestion(q models.Question) error {
	if q.ID == "" {
		return errors.New("question without id")
	}
	if !q.Type.Valid() {
		return fmt.Errorf("question %q: unknown type %q", q.ID, q.Type)
	}
	if q.Type.HasOptions() && len(q.Options) == 0 {
		return fmt.Errorf("question %q: %s question needs options", q.ID, q.Type)
	}
	if !q.Type.HasOptions() && len(q.Options) > 0 {
		return fmt.Errorf("question %q: options only apply to select, radio and checkbox", q.ID)
	}
	if q.Type != models.TypeNumber && (q.Min != nil || q.Max != nil) {
		return fmt.Errorf("question %q: min/max only apply to number questions", q.ID)
	}
	if q.Min != nil && q.Max != nil && *q.Min > *q.Max {
		return fmt.Errorf("question %q: min exceeds max", q.ID)
	}
	return nil
}

// Len returns the number of steps.
func (s *Schema) Len() int { return len(s.sections) }

// Section returns the section at step i.
func (s *Schema) Section(i int) (models.Section, bool) {
	if i < 0 || i >= len(s.sections) {
		return models.Section{}, false
	}
	return s.sections[i], true
}

// Sections returns every section in step order.
func (s *Schema) Sections() []models.Section {
	out := make([]models.Section, len(s.sections))
	copy(out, s.sections)
	return out
}

// Question looks up a question definition by id.
func (s *Schema) Question(id string) (models.Question, bool) {
	q, ok := s.byID[id]
	return q, ok
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/roi-survey/models"
)

// YAML document shape. Options are either plain strings or value/label
// pairs, so they are decoded by hand.

type document struct {
	Sections []yamlSection `yaml:"sections"`
}

type yamlSection struct {
	Name      string         `yaml:"section"`
	Questions []yamlQuestion `yaml:"questions"`
}

type yamlQuestion struct {
	ID        string              `yaml:"id"`
	Type      models.QuestionType `yaml:"type"`
	Label     string              `yaml:"label"`
	Required  bool                `yaml:"required"`
	Options   []yamlOption        `yaml:"options"`
	Min       *float64            `yaml:"min"`
	Max       *float64            `yaml:"max"`
	HelpText  string              `yaml:"helpText"`
	Multiline bool                `yaml:"multiline"`
}

type yamlOption models.Option

func (o *yamlOption) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		o.Value = node.Value
		o.Label = node.Value
		return nil
	case yaml.MappingNode:
		var pair struct {
			Value string `yaml:"value"`
			Label string `yaml:"label"`
		}
		if err := node.Decode(&pair); err != nil {
			return err
		}
		if pair.Value == "" {
			return fmt.Errorf("line %d: option needs a value", node.Line)
		}
		o.Value = pair.Value
		o.Label = pair.Label
		if o.Label == "" {
			o.Label = pair.Value
		}
		return nil
	}
	return fmt.Errorf("line %d: option must be a string or a value/label pair", node.Line)
}

func (d document) sections() []models.Section {
	sections := make([]models.Section, 0, len(d.Sections))
	for _, ys := range d.Sections {
		sec := models.Section{Name: ys.Name, Questions: make([]models.Question, 0, len(ys.Questions))}
		for _, yq := range ys.Questions {
			q := models.Question{
				ID:        yq.ID,
				Type:      yq.Type,
				Label:     yq.Label,
				Required:  yq.Required,
				Min:       yq.Min,
				Max:       yq.Max,
				HelpText:  yq.HelpText,
				Multiline: yq.Multiline,
			}
			for _, opt := range yq.Options {
				q.Options = append(q.Options, models.Option(opt))
			}
			sec.Questions = append(sec.Questions, q)
		}
		sections = append(sections, sec)
	}
	return sections
}

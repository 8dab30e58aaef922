// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package schema holds the static question schema of the survey form.

# Questionnaire

The technology-adoption ROI questionnaire ships embedded as YAML:

	s := schema.Default()

A replacement can be loaded from disk at startup:

	s, err := schema.LoadFile("survey.yaml")

# Document Format

	sections:
	  - section: Company Information
	    questions:
	      - id: company_name
	        type: text
	        label: Company name
	        required: true
	      - id: employee_count
	        type: number
	        label: Number of employees
	        min: 1

Question types are text, number, email, select, radio and checkbox.
Options are plain strings or value/label pairs.

# Consistency Checks

Load rejects (ErrInvalidSchema):

  - an empty section list or unnamed sections
  - unknown question types and unknown YAML fields
  - duplicate question ids across sections
  - choice questions without options, options on free-text questions
  - min/max on non-number questions, min greater than max

A Schema is immutable once built.
*/
package schema

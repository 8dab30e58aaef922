// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package validate implements the per-step validation of the survey form.

# Rules

Section validates only the questions of the given section:

	result := validate.Section(section, responses)
	if !result.Valid {
		// result.Errors maps question id -> message
	}

For each question, the first failing rule wins:

  - required and unanswered (absent, blank string, empty list):
    "This field is required"
  - number that does not parse: "Please enter a valid number"
  - number below min: "Value must be at least {min}"
  - number above max: "Value must not exceed {max}"

Failures are values, never errors.
*/
package validate

package cli

import "github.com/charmbracelet/huh"

// requiredInput returns a huh.Input that refuses blank values.
func requiredInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateRequired(title))
}

// optionalInput returns a huh.Input with no validation.
func optionalInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value)
}

// dateInput returns a huh.Input for a required schedule date.
func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("AAAA-MM-DD").
		Value(value).
		Validate(validateScheduleDate)
}

// requiredSelect returns a huh.Select whose first option is an empty
// placeholder that cannot be submitted.
func requiredSelect(title, placeholder string, options []huh.Option[string], value *string) *huh.Select[string] {
	opts := make([]huh.Option[string], 0, len(options)+1)
	opts = append(opts, huh.NewOption(placeholder, ""))
	opts = append(opts, options...)
	return huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(value).
		Validate(validateRequired(title))
}

// checklist returns a huh.MultiSelect over plain string options.
func checklist(title string, values []string, selected *[]string) *huh.MultiSelect[string] {
	opts := make([]huh.Option[string], 0, len(values))
	for _, v := range values {
		opts = append(opts, huh.NewOption(v, v))
	}
	return huh.NewMultiSelect[string]().
		Title(title).
		Options(opts...).
		Value(selected)
}

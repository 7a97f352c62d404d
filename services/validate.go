package services

import (
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"georeport/report"
)

// ValidationError reports which required fields were blank when an export
// was requested. Fields is sorted, suitable for driving inline highlights
// in the editor.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// ValidateForExport gates generation: a report needs the identifying meta
// fields, at least one recommendation and at least one remark before any
// engine runs. The returned error is always a *ValidationError.
func ValidateForExport(data report.ReportData) error {
	required := func(v string) error {
		return validation.Validate(strings.TrimSpace(v), validation.Required)
	}

	errs := validation.Errors{
		"surveyorName":    required(data.SurveyorName),
		"sNo":             required(data.SNo),
		"date":            required(data.Date),
		"toAddress":       required(data.ToAddress),
		"location":        required(data.Location),
		"recommendations": validation.Validate(data.Recommendations, validation.Required),
		"remarks":         validation.Validate(data.Remarks, validation.Required),
	}

	err := errs.Filter()
	if err == nil {
		return nil
	}

	fields := make([]string, 0, len(errs))
	for field, ferr := range errs {
		if ferr != nil {
			fields = append(fields, field)
		}
	}
	sort.Strings(fields)
	return &ValidationError{Fields: fields}
}

// Package testhelpers provides shared fixtures and fakes for testing the
// report pipeline end to end without a browser.
package testhelpers

import (
	"context"
	"testing"

	"georeport/report"
	"georeport/services"
)

// MinimalReport returns the smallest report that passes export validation.
// Tests mutate the returned value freely.
func MinimalReport(t *testing.T) report.ReportData {
	t.Helper()

	return report.ReportData{
		FileName:     "test-report",
		SurveyorName: "Test Surveyor",
		SNo:          "1",
		Date:         "01-01-2026",
		ToAddress:    "The Client,\nTest Town.",
		Location:     "Test site, Test Town.",
		Recommendations: []report.RecommendationRow{
			{
				ID:            "rec-1",
				PriorityLabel: "1st Priority",
				PriorityColor: report.ColorGreen,
				PointNo:       "A1",
				Depth:         "500 – 550",
				YieldVal:      "2000",
				Layers:        "120, 260",
				Casing:        "180",
				RowColor:      report.ColorGreen,
			},
		},
		Remarks: []string{"Test remark."},
	}
}

// MemorySaver records saved files for assertions.
type MemorySaver struct {
	Files []services.File
	Err   error
}

func (s *MemorySaver) Save(f services.File) error {
	if s.Err != nil {
		return s.Err
	}
	s.Files = append(s.Files, f)
	return nil
}

// FakeShare is a scriptable ShareTarget.
type FakeShare struct {
	Capable bool
	Err     error
	Shared  []services.File
}

func (s *FakeShare) CanShare(services.File) bool { return s.Capable }

func (s *FakeShare) Share(_ context.Context, f services.File, _, _ string) error {
	if s.Err != nil {
		return s.Err
	}
	s.Shared = append(s.Shared, f)
	return nil
}

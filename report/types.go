// Package report holds the canonical in-memory model of a survey report:
// the data every renderer consumes, the shared color-token palette, and the
// session store the editor writes into.
package report

// RecommendationRow is one drilling recommendation in the page-2 table.
// The numeric-looking fields stay free text on purpose: real entries carry
// ranges and annotations like "630 – 680 (dry)".
type RecommendationRow struct {
	ID            string     `json:"id"`
	PriorityLabel string     `json:"priorityLabel"`
	PriorityColor ColorToken `json:"priorityColor"`
	PointNo       string     `json:"pointNo"`
	Depth         string     `json:"depth"`
	YieldVal      string     `json:"yieldVal"`
	Layers        string     `json:"layers"`
	Casing        string     `json:"casing"`
	RowColor      ColorToken `json:"rowColor"`
}

// ThicknessBeds groups the three expected bed-thickness entries.
type ThicknessBeds struct {
	A string `json:"a"`
	B string `json:"b"`
	C string `json:"c"`
}

// Geophysical describes the geophysical survey performed on site.
type Geophysical struct {
	Type    string `json:"type"`
	Results string `json:"results"`
}

// ReportData is the single source of truth for one report. Every renderer
// (preview raster, PDF, DOCX, XLSX) reads the same snapshot; none of them
// may mutate it.
type ReportData struct {
	// Meta
	FileName     string `json:"fileName"`
	SurveyorName string `json:"surveyorName"`

	// Branding assets: a static asset path or a Base64 data URL. Either
	// may be empty; exports must not fail on a missing image.
	LogoImage      string `json:"logoImage"`
	SignatureImage string `json:"signatureImage"`

	// Style
	Fonts FontConfig `json:"fonts"`

	// Content
	SNo            string              `json:"sNo"`
	Date           string              `json:"date"`
	ToAddress      string              `json:"toAddress"`
	Location       string              `json:"location"`
	Physiography   string              `json:"physiography"`
	Topographical  string              `json:"topographical"`
	Geological     string              `json:"geological"`
	ThicknessBeds  ThicknessBeds       `json:"thicknessBeds"`
	Hydrological   string              `json:"hydrological"`
	IntrusiveRocks string              `json:"intrusiveRocks"`
	Groundwater    string              `json:"groundwater"`
	Geophysical    Geophysical         `json:"geophysical"`
	Recommendations []RecommendationRow `json:"recommendations"`
	Note           string              `json:"note"`
	Remarks        []string            `json:"remarks"`
}

// Clone returns a deep copy of the report. The store hands out and accepts
// only clones so snapshots stay immutable from the caller's point of view.
func (d ReportData) Clone() ReportData {
	out := d
	if d.Recommendations != nil {
		out.Recommendations = make([]RecommendationRow, len(d.Recommendations))
		copy(out.Recommendations, d.Recommendations)
	}
	if d.Remarks != nil {
		out.Remarks = make([]string, len(d.Remarks))
		copy(out.Remarks, d.Remarks)
	}
	return out
}

// TableBands holds the recommendation-table column widths as percentages.
// Both the layout renderer and the DOCX engine derive their column sizing
// from this single definition so the two outputs cannot drift apart.
var TableBands = [5]int{10, 20, 25, 25, 20}

// TableHeaders is the fixed 5-column header of the recommendations table,
// paired with the units sub-header row beneath it.
var (
	TableHeaders = [5]string{"Point No", "Depth Recommended", "Expected Yield", "Expected Layers", "Recommended PVC Casing"}
	TableUnits   = [5]string{"Code", "(Feet)", "LPH (V notch Flow)", "(Feet)", "(Feet)"}
)

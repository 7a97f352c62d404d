package report

// DefaultReport returns the template every new editing session starts from.
// The content is the worked example report, so the preview and both exports
// are meaningful before the user has typed anything.
func DefaultReport() ReportData {
	return ReportData{
		FileName:     "Ground_Water_Survey_Report",
		SurveyorName: "GANESH RAJ",

		LogoImage:      "logo.png",
		SignatureImage: "signature.png",

		Fonts: FontConfig{
			Global:  "Arial",
			Title:   "Arial",
			Headers: "Arial",
			Body:    "Arial",
		},

		SNo:       "172",
		Date:      "09–Apr–2024",
		ToAddress: "Hyderabad",
		Location:  "The Investigated project is an residential building bearing H.No. 10 – 140/2 located in P.V.N. Colony, Malkajgiri, Hyderabad, Telangana Satate.",
		Physiography: "There is no river course present near the above-said investigated land. " +
			"However, some first-order drainage patterns were observed.",
		Topographical: "The investigated land got different topographical Observations mostly ridge portions, " +
			"upland areas, and sloping land surface places.",
		Geological: "The formation present in the land is the ARCHEAN group of rocks. " +
			"The lithology of the area is mostly fractured and semi-fractured granite. " +
			"Most of the area is covered with granitic sheet rock.",
		ThicknessBeds: ThicknessBeds{
			A: "01 – 03 Mts.",
			B: "03 – 06 Mts.",
			C: "06 – 09 Mts. and above",
		},
		Hydrological: "Hydrological conditions of the above-said land are moderately favorable in some parts " +
			"of the land and Favorable in some other parts.",
		IntrusiveRocks: "No Dolerite Intrusive rocks presence was observed in and around the above said investigated land.",
		Groundwater:    "Bore wells / open wells present in and around the site are yielding SATISFACTORILY",
		Geophysical: Geophysical{
			Type:    "VLF & Self Potential Test",
			Results: "Moderately Favorable Results Obtained",
		},
		Recommendations: []RecommendationRow{
			{
				ID:            "1",
				PriorityLabel: "1st priority point",
				PriorityColor: ColorGreen,
				PointNo:       "01",
				Depth:         "990",
				YieldVal:      "1500 – 2500 (1” to 1½”)",
				Layers:        "630 – 680 (dry)\n900 – 950",
				Casing:        "40 – 60",
				RowColor:      ColorGreen,
			},
			{
				ID:            "2",
				PriorityLabel: "2nd priority point",
				PriorityColor: ColorCyan,
				PointNo:       "02",
				Depth:         "990",
				YieldVal:      "1200 – 1500 (1”)",
				Layers:        "900 – 950",
				Casing:        "50 – 60",
				RowColor:      ColorCyan,
			},
		},
		Note: "NOTE : The above area is a complex sheet rock area. The is in a very high-risk zone as per " +
			"groundwater availability. Hence the success rate would be around 80% to 90% probability only. " +
			"Clients are advised to think twice before drilling.",
		Remarks: []string{
			"At the end of the survey all the POINTS are well marked, numbered, and informed YOU for better identification.",
			"If required for any practical reasons, the drilling can be done within a ONE feet radius from the marked points.",
		},
	}
}

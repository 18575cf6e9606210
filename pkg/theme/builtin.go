package theme

// thChartPalette is the slice colour order of the FoundationData charts.
var thChartPalette = []string{"#ff0000", "#82ca9d", "#ffc658", "#ff7373"}

func thBuiltins() []Theme {
	return []Theme{thDark(), thLight(), thNord(), thMono()}
}

// thDark mirrors the dashboard's dark mode.
func thDark() Theme {
	return Theme{
		Name:       "dark",
		Background: "#0a0a0a",
		Foreground: "#dcdcdc",
		Dim:        "#787878",
		Accent:     "#3b82f6",
		Header:     "#1e1e1e",
		Sidebar:    "#282828",

		Border:      "#505050",
		BorderFocus: "#3b82f6",
		Title:       "#dcdcdc",
		Guide:       "#3b82f6",
		BorderStyle: "rounded",
		FocusStyle:  "heavy",

		Line:    "#3b82f6",
		Palette: thChartPalette,

		StatusOK:    "#82ca9d",
		StatusError: "#ff7373",
		HelpKey:     "#3b82f6",
		HelpDesc:    "#787878",
	}
}

// thLight mirrors the dashboard's light mode.
func thLight() Theme {
	return Theme{
		Name:       "light",
		Background: "#fafafa",
		Foreground: "#141414",
		Dim:        "#787878",
		Accent:     "#1d4ed8",
		Header:     "#e6e6e6",
		Sidebar:    "#dcdcdc",

		Border:      "#b4b4b4",
		BorderFocus: "#1d4ed8",
		Title:       "#141414",
		Guide:       "#1d4ed8",
		BorderStyle: "rounded",
		FocusStyle:  "heavy",

		Line:    "#3b82f6",
		Palette: thChartPalette,

		StatusOK:    "#15803d",
		StatusError: "#b91c1c",
		HelpKey:     "#1d4ed8",
		HelpDesc:    "#787878",
	}
}

func thNord() Theme {
	return Theme{
		Name:       "nord",
		Background: "#2e3440",
		Foreground: "#eceff4",
		Dim:        "#4c566a",
		Accent:     "#88c0d0",
		Header:     "#3b4252",
		Sidebar:    "#3b4252",

		Border:      "#4c566a",
		BorderFocus: "#88c0d0",
		Title:       "#e5e9f0",
		Guide:       "#ebcb8b",
		BorderStyle: "single",
		FocusStyle:  "double",

		Line:    "#81a1c1",
		Palette: []string{"#bf616a", "#a3be8c", "#ebcb8b", "#d08770"},

		StatusOK:    "#a3be8c",
		StatusError: "#bf616a",
		HelpKey:     "#88c0d0",
		HelpDesc:    "#4c566a",
	}
}

// thMono draws without colour, for NO_COLOR and dumb terminals.
func thMono() Theme {
	return Theme{
		Name:        "mono",
		BorderStyle: "single",
		FocusStyle:  "double",
	}
}

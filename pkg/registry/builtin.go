package registry

// Default sizes, in board pixels, for text panels and charts.
const (
	TextWidth   = 200
	TextHeight  = 150
	ChartWidth  = 450
	ChartHeight = 400
)

// Dataset names shared with the data package.
const (
	SeriesHourly   = "hourly"
	SeriesDaily    = "daily"
	SeriesHostCPU  = "host.cpu"
	CategoriesPie  = "pie"
	CategoriesBar  = "bar"
	GroupText      = "Text"
	GroupCharts    = "Charts"
	GroupSystem    = "System"
	KeyHostLoad    = "hostLoad"
	hostLoadHeight = 300
)

// BuiltinDefinitions returns the FoundationData dashboard catalog.
func BuiltinDefinitions() []Definition {
	text := func(key string, lines ...string) Definition {
		return Definition{
			Key: key, Title: key, Group: GroupText, Kind: KindText,
			DefaultWidth: TextWidth, DefaultHeight: TextHeight,
			Data: DataRef{Lines: lines},
		}
	}
	chart := func(key, title string, kind RenderKind, ref DataRef) Definition {
		return Definition{
			Key: key, Title: title, Group: GroupCharts, Kind: kind,
			DefaultWidth: ChartWidth, DefaultHeight: ChartHeight,
			Data: ref,
		}
	}

	return []Definition{
		text("Skills", "JavaScript", "React", "TypeScript", "Node.js"),
		text("Salary", "$105,000 / yr"),
		text("Roles", "Full Stack Developer", "AI Engineer", "Cloud Architect"),
		text("Locations", "San Francisco", "London", "Berlin"),
		text("Reports", "Monthly Hiring Trends", "Market Movement Summary"),

		chart("lineGraph", "Line graph", KindLine, DataRef{Series: SeriesHourly}),
		chart("pieChart", "Pie chart", KindPie, DataRef{Categories: CategoriesPie}),
		chart("barChart", "Bar chart", KindBar, DataRef{Categories: CategoriesBar}),
	}
}

// HostLoadDefinition is the live CPU graph offered when the host feed runs.
func HostLoadDefinition() Definition {
	return Definition{
		Key: KeyHostLoad, Title: "Host load", Group: GroupSystem, Kind: KindLine,
		DefaultWidth: ChartWidth, DefaultHeight: hostLoadHeight,
		Data: DataRef{Series: SeriesHostCPU},
	}
}

// Builtin returns a registry of the built-in catalog followed by extra.
func Builtin(extra ...Definition) (*Registry, error) {
	return New(append(BuiltinDefinitions(), extra...)...)
}

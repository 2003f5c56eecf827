package dashboard

// Segment colors, cycled by rank
var clusterPalette = []string{
	"#0088FE", "#00C49F", "#FFBB28", "#FF8042", "#8884D8",
	"#82CA9D", "#FFC658", "#FF6B6B", "#4ECDC4", "#45B7D1",
}

var validatorPalette = []string{
	"#00C49F", "#0088FE", "#FFBB28", "#FF8042", "#8884D8",
	"#82CA9D", "#FFC658", "#FF6B6B", "#4ECDC4", "#45B7D1",
}

func colorAt(palette []string, rank int) string {
	return palette[rank%len(palette)]
}

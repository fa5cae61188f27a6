package testcases

// All contains the polygon test cases, grouped by category.
var All = map[string][]TestCase{
	"basic":      basicCases,
	"precision":  precisionCases,
	"ctm":        ctmCases,
	"large":      largeCases,
	"degenerate": degenerateCases,
}

// AllPaths contains the path test cases, grouped by category.
var AllPaths = map[string][]PathCase{
	"curve":   curveCases,
	"subpath": subpathCases,
}

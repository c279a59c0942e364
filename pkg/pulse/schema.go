package pulse

import "math"

// Column names of the employee survey table. Header matching in the loader
// is exact and case-sensitive, but column order in the file is free.
const (
	ColEmployeeID          = "EmployeeID"
	ColDepartment          = "Department"
	ColJobTitle            = "JobTitle"
	ColSatisfactionRating  = "SatisfactionRating"
	ColEngagementLevel     = "EngagementLevel"
	ColReportsConcerns     = "ReportsConcerns"
	ColProvidedSuggestions = "ProvidedSuggestions"
)

// Known engagement levels, ordered low to high.
const (
	EngagementLow    = "Low"
	EngagementMedium = "Medium"
	EngagementHigh   = "High"
)

// EmployeeSchema returns the fixed schema of one employee row.
func EmployeeSchema() Schema {
	return Schema{Columns: []ColumnSchema{
		{Name: ColEmployeeID, Type: KindInt},
		{Name: ColDepartment, Type: KindString},
		{Name: ColJobTitle, Type: KindString},
		{Name: ColSatisfactionRating, Type: KindInt},
		{Name: ColEngagementLevel, Type: KindString},
		{Name: ColReportsConcerns, Type: KindBool},
		{Name: ColProvidedSuggestions, Type: KindBool},
	}}
}

// EngagementScore maps a categorical engagement level to its ordinal score
// (Low=1, Medium=2, High=3). The second return is false for any other
// value; such rows carry no score and must be excluded from averages.
func EngagementScore(level string) (int64, bool) {
	switch level {
	case EngagementLow:
		return 1, true
	case EngagementMedium:
		return 2, true
	case EngagementHigh:
		return 3, true
	default:
		return 0, false
	}
}

// Round2 rounds half-up to two decimal places.
func Round2(x float64) float64 {
	return math.Floor(x*100+0.5) / 100
}

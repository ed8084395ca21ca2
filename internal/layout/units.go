package layout

const (
	pointsPerInch      = 72.0
	millimetresPerInch = 25.4
)

// PointsToMillimetres converts a length in PDF points to millimetres.
func PointsToMillimetres(pt float64) float64 {
	return pt * millimetresPerInch / pointsPerInch
}

// MillimetresToPoints converts a length in millimetres to PDF points.
func MillimetresToPoints(mm float64) float64 {
	return mm * pointsPerInch / millimetresPerInch
}

// PercentOf returns p percent of x.
func PercentOf(p, x float64) float64 {
	return p / 100 * x
}

package matching

type Fit string

const (
	FitExcellent Fit = "excellent"
	FitGood      Fit = "good"
	FitFair      Fit = "fair"
	FitPoor      Fit = "poor"
)

func ClassifyFit(score int) Fit {
	switch {
	case score >= 80:
		return FitExcellent
	case score >= 60:
		return FitGood
	case score >= 40:
		return FitFair
	default:
		return FitPoor
	}
}

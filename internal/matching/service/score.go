package service

// Scoring weights and normalization ceilings. Ratings run 0-5,
// experience saturates at 10 years, and a painter carrying 10 or more
// active bookings contributes nothing on the workload axis.
const (
	weightRating     = 0.5
	weightExperience = 0.3
	weightWorkload   = 0.2

	maxRating           = 5.0
	fullExperienceYears = 10.0
	fullWorkload        = 10.0
)

// Score computes a painter's suitability in [0, 1]. Higher is better.
// Rating and experience reward, current workload penalizes.
func Score(rating float64, experienceYears int, workload int64) float64 {
	ratingNorm := clamp01(rating / maxRating)
	experienceNorm := clamp01(float64(experienceYears) / fullExperienceYears)
	workloadNorm := clamp01(float64(workload) / fullWorkload)

	return weightRating*ratingNorm +
		weightExperience*experienceNorm +
		weightWorkload*(1-workloadNorm)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

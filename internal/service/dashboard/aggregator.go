package dashboard

import (
	"strconv"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/dashboard"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/training"
)

// Aggregate reduces a snapshot to the dashboard summary. Every reduction is
// a count or a sum, so the result does not depend on the order of rows.
func Aggregate(s dashboard.Snapshot) dashboard.Stats {
	stats := dashboard.Stats{
		TotalEmployees:   len(s.Employees),
		TrainingPrograms: len(s.Trainings),
		Departments:      len(s.Departments),
	}

	for _, e := range s.Employees {
		if e.IsActive() {
			stats.ActiveEmployees++
		}
	}

	for _, j := range s.Jobs {
		if j.IsOpen() {
			stats.ActiveJobs++
		}
	}

	for _, t := range s.Trainings {
		switch t.Status {
		case training.StatusOngoing:
			stats.OngoingTraining++
		case training.StatusCompleted:
			stats.CompletedTraining++
		}
	}

	var scoreSum float64
	var scored int
	for _, a := range s.Appraisals {
		if a.IsPending() {
			stats.PendingAppraisals++
		}
		if a.Score != nil {
			scoreSum += *a.Score
			scored++
		}
	}
	stats.AvgPerformance = formatAverage(scoreSum, scored)

	for _, c := range s.Cycles {
		if c.IsActive() {
			stats.ActiveCycles++
		}
	}

	return stats
}

// formatAverage renders sum/n with one decimal place, or "0" when n is 0.
func formatAverage(sum float64, n int) string {
	if n == 0 {
		return "0"
	}
	return strconv.FormatFloat(sum/float64(n), 'f', 1, 64)
}

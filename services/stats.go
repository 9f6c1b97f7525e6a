package services

import (
	"civictrack/model"
	"math"
)

// A user with this many open assignments or more is no longer considered
// available for new work.
const AvailabilityLimit = 10

type WorkloadEntry struct {
	UserID               int     `json:"user_id"`
	Name                 string  `json:"name"`
	Role                 string  `json:"role"`
	Department           string  `json:"department"`
	ActiveAssignments    int     `json:"active_assignments"`
	TotalAssignments     int     `json:"total_assignments"`
	CompletedAssignments int     `json:"completed_assignments"`
	CompletionRate       float64 `json:"completion_rate"`
}

// BuildWorkloadEntry rolls one user's assignments up into workload counters.
// CompletionRate is completed/total as a percentage rounded to one decimal,
// and 0 when the user has no assignments at all.
func BuildWorkloadEntry(user model.Profile, assignments []model.Assignment) WorkloadEntry {
	entry := WorkloadEntry{
		UserID:     user.UserID,
		Name:       user.FullName,
		Role:       user.Role,
		Department: user.Department,
	}

	for _, assignment := range assignments {
		switch assignment.Status {
		case "assigned", "in_progress":
			entry.ActiveAssignments++
		case "completed":
			entry.CompletedAssignments++
		}
	}
	entry.TotalAssignments = len(assignments)

	if entry.TotalAssignments > 0 {
		rate := float64(entry.CompletedAssignments) / float64(entry.TotalAssignments) * 100
		entry.CompletionRate = math.Round(rate*10) / 10
	}
	return entry
}

// RoundWorkload rounds an average workload figure to one decimal.
func RoundWorkload(value float64) float64 {
	return math.Round(value*10) / 10
}

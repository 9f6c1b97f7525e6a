package services

import (
	"civictrack/model"
	"testing"
)

func assignmentsWithStatuses(statuses ...string) []model.Assignment {
	assignments := make([]model.Assignment, 0, len(statuses))
	for _, status := range statuses {
		assignments = append(assignments, model.Assignment{Status: status})
	}
	return assignments
}

func TestBuildWorkloadEntry(t *testing.T) {
	user := model.Profile{UserID: 7, FullName: "A. Clerk", Role: "staff", Department: "roads"}

	entry := BuildWorkloadEntry(user, assignmentsWithStatuses("assigned", "in_progress", "completed"))
	if entry.ActiveAssignments != 2 {
		t.Errorf("ActiveAssignments = %d, want 2", entry.ActiveAssignments)
	}
	if entry.TotalAssignments != 3 {
		t.Errorf("TotalAssignments = %d, want 3", entry.TotalAssignments)
	}
	if entry.CompletedAssignments != 1 {
		t.Errorf("CompletedAssignments = %d, want 1", entry.CompletedAssignments)
	}
	if entry.CompletionRate != 33.3 {
		t.Errorf("CompletionRate = %v, want 33.3", entry.CompletionRate)
	}
}

func TestBuildWorkloadEntryNoAssignments(t *testing.T) {
	entry := BuildWorkloadEntry(model.Profile{UserID: 8}, nil)
	if entry.CompletionRate != 0 {
		t.Errorf("CompletionRate with no assignments = %v, want 0", entry.CompletionRate)
	}
	if entry.TotalAssignments != 0 || entry.ActiveAssignments != 0 {
		t.Errorf("counts with no assignments = %+v, want zeroes", entry)
	}
}

func TestRoundWorkload(t *testing.T) {
	if got := RoundWorkload(7.0 / 3.0); got != 2.3 {
		t.Errorf("RoundWorkload(7/3) = %v, want 2.3", got)
	}
	if got := RoundWorkload(0); got != 0 {
		t.Errorf("RoundWorkload(0) = %v, want 0", got)
	}
}

package services

import (
	"civictrack/model"
	"testing"
)

func profile(id int, role, department string) *model.Profile {
	return &model.Profile{UserID: id, Role: role, Department: department}
}

func TestCanCreateAssignment(t *testing.T) {
	cases := []struct {
		name    string
		actor   *model.Profile
		target  *model.Profile
		allowed bool
	}{
		{"admin to staff anywhere", profile(1, "admin", ""), profile(2, "staff", "roads"), true},
		{"admin to supervisor anywhere", profile(1, "admin", ""), profile(2, "supervisor", "sanitation"), true},
		{"supervisor to staff same department", profile(1, "supervisor", "roads"), profile(2, "staff", "roads"), true},
		{"supervisor to supervisor same department", profile(1, "supervisor", "roads"), profile(2, "supervisor", "roads"), true},
		{"supervisor across departments", profile(1, "supervisor", "roads"), profile(2, "staff", "sanitation"), false},
		{"staff to supervisor same department", profile(1, "staff", "roads"), profile(2, "supervisor", "roads"), true},
		{"staff to staff same department", profile(1, "staff", "roads"), profile(2, "staff", "roads"), false},
		{"staff to supervisor across departments", profile(1, "staff", "roads"), profile(2, "supervisor", "sanitation"), false},
		{"unknown role", profile(1, "citizen", "roads"), profile(2, "staff", "roads"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, reason := CanCreateAssignment(tc.actor, tc.target)
			if ok != tc.allowed {
				t.Errorf("CanCreateAssignment = %v (%q), want %v", ok, reason, tc.allowed)
			}
			if !ok && reason == "" {
				t.Error("denial must carry a reason")
			}
		})
	}
}

func TestCanAccessAssignment(t *testing.T) {
	assignee := profile(5, "staff", "roads")

	if !CanAccessAssignment(profile(1, "admin", ""), assignee) {
		t.Error("admin must access any assignment")
	}
	if !CanAccessAssignment(profile(5, "staff", "roads"), assignee) {
		t.Error("assignee must access their own assignment")
	}
	if !CanAccessAssignment(profile(2, "supervisor", "roads"), assignee) {
		t.Error("supervisor must access assignments in their department")
	}
	if CanAccessAssignment(profile(2, "supervisor", "sanitation"), assignee) {
		t.Error("supervisor must not access assignments outside their department")
	}
	if CanAccessAssignment(profile(3, "staff", "roads"), assignee) {
		t.Error("other staff must not access the assignment")
	}
}

func TestCanDeleteAssignment(t *testing.T) {
	assignee := profile(5, "staff", "roads")

	if !CanDeleteAssignment(profile(1, "admin", ""), assignee) {
		t.Error("admin must delete any assignment")
	}
	if !CanDeleteAssignment(profile(2, "supervisor", "roads"), assignee) {
		t.Error("supervisor must delete assignments in their department")
	}
	if CanDeleteAssignment(profile(2, "supervisor", "sanitation"), assignee) {
		t.Error("supervisor must not delete assignments outside their department")
	}
	if CanDeleteAssignment(profile(5, "staff", "roads"), assignee) {
		t.Error("staff must not delete assignments, even their own")
	}
}

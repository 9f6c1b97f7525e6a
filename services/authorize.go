package services

import (
	"civictrack/model"
)

// CanCreateAssignment applies the assignment authorization matrix. Admins may
// assign to anyone assignable, supervisors only within their department, and
// staff only to supervisors within their department. The target's role must
// already be validated as staff or supervisor.
func CanCreateAssignment(actor, target *model.Profile) (bool, string) {
	switch actor.Role {
	case "admin":
		return true, ""
	case "supervisor":
		if actor.Department != target.Department {
			return false, "Cannot assign to users outside your department"
		}
		return true, ""
	case "staff":
		if target.Role != "supervisor" {
			return false, "Staff members can only assign tasks to supervisors"
		}
		if actor.Department != target.Department {
			return false, "You can only assign to supervisors in your department"
		}
		return true, ""
	}
	return false, "Role is not allowed to create assignments"
}

// CanAccessAssignment reports whether the actor may read or update an
// assignment held by assignee. Admins always can, assignees can on their own
// records, supervisors within their department.
func CanAccessAssignment(actor, assignee *model.Profile) bool {
	if actor.Role == "admin" || actor.UserID == assignee.UserID {
		return true
	}
	if actor.Role == "supervisor" && actor.Department == assignee.Department {
		return true
	}
	return false
}

// CanDeleteAssignment reports whether the actor may delete an assignment held
// by assignee. Route-level role gating already restricts this to admins and
// supervisors; supervisors are additionally bound to their department.
func CanDeleteAssignment(actor, assignee *model.Profile) bool {
	if actor.Role == "admin" {
		return true
	}
	return actor.Role == "supervisor" && actor.Department == assignee.Department
}

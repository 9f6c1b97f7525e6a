package assignment

import (
	"civictrack/model"
	"civictrack/services"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetDepartmentStats partitions assignment counts by status across a
// department's assignable users. Staff and supervisors are always scoped to
// their own department; admins may pick one or see all.
func GetDepartmentStats(c *gin.Context, db *gorm.DB) {
	actor, err := currentProfile(c, db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user profile"})
		return
	}

	department := c.Query("department")
	if actor.Role == "supervisor" || actor.Role == "staff" {
		department = actor.Department
	}

	label := department
	if label == "" {
		label = "All Departments"
	}

	population, err := services.GetAssignableProfiles(db, department, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch department statistics"})
		return
	}

	if len(population) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"department":        label,
			"total_staff":       0,
			"total_supervisors": 0,
			"assignment_stats": gin.H{
				"total_assignments": 0,
				"assigned":          0,
				"in_progress":       0,
				"completed":         0,
			},
			"user_workload": []services.WorkloadEntry{},
		})
		return
	}

	var allAssignments []model.Assignment
	if err := db.Where("staff_id IN ?", profileIDs(population)).Find(&allAssignments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch department statistics"})
		return
	}

	statusCounts := map[string]int{}
	byUser := map[int][]model.Assignment{}
	for _, assignment := range allAssignments {
		statusCounts[assignment.Status]++
		byUser[assignment.StaffID] = append(byUser[assignment.StaffID], assignment)
	}

	entries := make([]services.WorkloadEntry, 0, len(population))
	staffCount := 0
	supervisorCount := 0
	for _, user := range population {
		entries = append(entries, services.BuildWorkloadEntry(user, byUser[user.UserID]))

		switch user.Role {
		case "staff":
			staffCount++
		case "supervisor":
			supervisorCount++
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ActiveAssignments > entries[j].ActiveAssignments
	})

	c.JSON(http.StatusOK, gin.H{
		"department":        label,
		"total_staff":       staffCount,
		"total_supervisors": supervisorCount,
		"assignment_stats": gin.H{
			"total_assignments": len(allAssignments),
			"assigned":          statusCounts["assigned"],
			"in_progress":       statusCounts["in_progress"],
			"completed":         statusCounts["completed"],
		},
		"user_workload": entries,
	})
}

package assignment

import (
	"civictrack/model"
	"civictrack/services"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetWorkloadDistribution reports active/total/completed assignment counts per
// assignable user, supervisors scoped to their own department.
func GetWorkloadDistribution(c *gin.Context, db *gorm.DB) {
	actor, err := currentProfile(c, db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user profile"})
		return
	}

	department := ""
	if actor.Role == "supervisor" {
		department = actor.Department
	}

	population, err := services.GetAssignableProfiles(db, department, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch workload distribution"})
		return
	}

	if len(population) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"total_staff":           0,
			"total_supervisors":     0,
			"avg_workload":          0,
			"workload_distribution": []services.WorkloadEntry{},
		})
		return
	}

	entries := make([]services.WorkloadEntry, 0, len(population))
	totalActive := 0
	staffCount := 0
	supervisorCount := 0

	for _, user := range population {
		var userAssignments []model.Assignment
		if err := db.Where("staff_id = ?", user.UserID).Find(&userAssignments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch workload distribution"})
			return
		}

		entry := services.BuildWorkloadEntry(user, userAssignments)
		entries = append(entries, entry)
		totalActive += entry.ActiveAssignments

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
		"total_staff":              staffCount,
		"total_supervisors":        supervisorCount,
		"total_active_assignments": totalActive,
		"avg_workload":             services.RoundWorkload(float64(totalActive) / float64(len(population))),
		"workload_distribution":    entries,
	})
}

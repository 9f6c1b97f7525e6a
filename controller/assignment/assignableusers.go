package assignment

import (
	"civictrack/model"
	"civictrack/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAssignableUsers lists the profiles eligible as assignment targets for
// the calling user, with per-user workload and availability.
func GetAssignableUsers(c *gin.Context, db *gorm.DB) {
	actor, err := currentProfile(c, db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user profile"})
		return
	}

	roles := []string{"staff", "supervisor"}
	if roleFilter := c.Query("role"); roleFilter == "staff" || roleFilter == "supervisor" {
		roles = []string{roleFilter}
	}

	department := ""
	switch actor.Role {
	case "staff":
		// Staff can only assign upward, to supervisors in their own
		// department.
		if actor.Department != "" {
			department = actor.Department
			roles = []string{"supervisor"}
		}
	case "supervisor":
		if actor.Department != "" {
			department = actor.Department
		}
	default:
		department = c.Query("department")
	}

	query := db.Where("role IN ?", roles)
	if department != "" {
		query = query.Where("department = ?", department)
	}

	var users []model.Profile
	if err := query.Order("full_name").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch assignable users"})
		return
	}

	results := make([]gin.H, 0, len(users))
	for _, user := range users {
		activeCount, err := services.CountActiveAssignments(db, user.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch assignable users"})
			return
		}

		results = append(results, gin.H{
			"id":                 user.UserID,
			"full_name":          user.FullName,
			"role":               user.Role,
			"department":         user.Department,
			"active_assignments": activeCount,
			"is_available":       activeCount < services.AvailabilityLimit,
		})
	}

	c.JSON(http.StatusOK, results)
}

package assignment

import (
	"civictrack/services"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ListAssignments(c *gin.Context, db *gorm.DB) {
	actor, err := currentProfile(c, db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user profile"})
		return
	}

	page, perPage := parsePagination(c)
	filter := services.AssignmentFilter{}

	// Role-based visibility comes before any user-supplied filter.
	switch actor.Role {
	case "staff":
		filter.StaffIDs = []int{actor.UserID}
	case "supervisor":
		pool, err := services.GetAssignableProfiles(db, actor.Department, nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch assignments"})
			return
		}
		if len(pool) == 0 {
			emptyAssignmentPage(c, page, perPage)
			return
		}
		filter.StaffIDs = profileIDs(pool)
	default:
		if staffIDParam := c.Query("staff_id"); staffIDParam != "" {
			if staffID, err := strconv.Atoi(staffIDParam); err == nil {
				filter.StaffIDs = []int{staffID}
			}
		}
	}

	if issueIDParam := c.Query("issue_id"); issueIDParam != "" {
		if issueID, err := strconv.Atoi(issueIDParam); err == nil {
			filter.IssueID = issueID
		}
	}
	filter.Status = c.Query("status")

	// Department filtering (admin only); resolved to member ids and
	// intersected with any staff filter already in place.
	if department := c.Query("department"); department != "" && actor.Role == "admin" {
		pool, err := services.GetAssignableProfiles(db, department, nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch assignments"})
			return
		}
		if deptIDs := profileIDs(pool); len(deptIDs) > 0 {
			if filter.StaffIDs != nil {
				filter.StaffIDs = intersectIDs(filter.StaffIDs, deptIDs)
			} else {
				filter.StaffIDs = deptIDs
			}
		}
	}

	if filter.StaffIDs != nil && len(filter.StaffIDs) == 0 {
		emptyAssignmentPage(c, page, perPage)
		return
	}

	assignments, total, err := services.QueryAssignments(db, filter, page, perPage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch assignments"})
		return
	}

	results := make([]gin.H, 0, len(assignments))
	for _, assignment := range assignments {
		results = append(results, assignmentResponse(assignment))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"assignments": results,
		"pagination":  services.NewPagination(total, page, perPage),
	})
}

func MyAssignments(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)
	page, perPage := parsePagination(c)

	filter := services.AssignmentFilter{
		StaffIDs: []int{int(userId)},
		Status:   c.Query("status"),
	}

	assignments, total, err := services.QueryAssignments(db, filter, page, perPage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch assignments"})
		return
	}

	results := make([]gin.H, 0, len(assignments))
	for _, assignment := range assignments {
		results = append(results, assignmentResponse(assignment))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"assignments": results,
		"pagination":  services.NewPagination(total, page, perPage),
	})
}

func emptyAssignmentPage(c *gin.Context, page, perPage int) {
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"assignments": []gin.H{},
		"pagination":  services.NewPagination(0, page, perPage),
	})
}

package assignment

import (
	"civictrack/middleware"
	"civictrack/model"
	"civictrack/services"
	"strconv"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AssignmentController(router *gin.Engine, db *gorm.DB, firestoreClient *firestore.Client) {
	routes := router.Group("/assignments", middleware.AccessTokenMiddleware())
	{
		routes.POST("/", middleware.RoleMiddleware("admin", "supervisor", "staff"), func(c *gin.Context) {
			CreateAssignment(c, db, firestoreClient)
		})
		routes.GET("/", func(c *gin.Context) {
			ListAssignments(c, db)
		})
		routes.GET("/my", middleware.RoleMiddleware("staff", "supervisor"), func(c *gin.Context) {
			MyAssignments(c, db)
		})
		routes.POST("/bulk", middleware.RoleMiddleware("admin", "supervisor"), func(c *gin.Context) {
			BulkAssignIssues(c, db, firestoreClient)
		})
		routes.GET("/stats/workload", middleware.RoleMiddleware("admin", "supervisor"), func(c *gin.Context) {
			GetWorkloadDistribution(c, db)
		})
		routes.GET("/stats/department", func(c *gin.Context) {
			GetDepartmentStats(c, db)
		})
		routes.GET("/assignable-users", func(c *gin.Context) {
			GetAssignableUsers(c, db)
		})
		routes.GET("/:assignmentid", func(c *gin.Context) {
			GetAssignment(c, db)
		})
		routes.PUT("/:assignmentid", func(c *gin.Context) {
			UpdateAssignment(c, db)
		})
		routes.DELETE("/:assignmentid", middleware.RoleMiddleware("admin", "supervisor"), func(c *gin.Context) {
			DeleteAssignment(c, db)
		})
		routes.POST("/:assignmentid/escalate", middleware.RoleMiddleware("admin", "supervisor"), func(c *gin.Context) {
			EscalateAssignment(c, db)
		})
	}
}

// currentProfile resolves the authenticated user's profile from the token
// claims stored by the access token middleware.
func currentProfile(c *gin.Context, db *gorm.DB) (*model.Profile, error) {
	userId := c.MustGet("userId").(uint)
	return services.GetProfileData(db, int(userId))
}

// loadAssignmentDetail fetches one assignment with its related profiles and
// issue preloaded.
func loadAssignmentDetail(db *gorm.DB, assID int) (*model.Assignment, error) {
	var assignment model.Assignment
	err := db.Preload("Staff").Preload("Assigner").Preload("Issue").
		Where("ass_id = ?", assID).First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// assignmentResponse flattens an assignment and its preloaded relations into
// the shape API clients expect.
func assignmentResponse(assignment model.Assignment) gin.H {
	return gin.H{
		"ass_id":           assignment.AssID,
		"issue_id":         assignment.IssueID,
		"staff_id":         assignment.StaffID,
		"assigned_by":      assignment.AssignedBy,
		"status":           assignment.Status,
		"deadline":         assignment.Deadline,
		"notes":            assignment.Notes,
		"assign_at":        assignment.AssignAt,
		"staff_name":       assignment.Staff.FullName,
		"staff_department": assignment.Staff.Department,
		"staff_role":       assignment.Staff.Role,
		"assigned_by_name": assignment.Assigner.FullName,
		"issue_title":      assignment.Issue.Title,
		"issue_category":   assignment.Issue.Category,
	}
}

// parsePagination clamps the page query values to their allowed ranges:
// page >= 1, per_page between 1 and 100 with a default of 20.
func parsePagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if err != nil || perPage < 1 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}
	return page, perPage
}

func profileIDs(profiles []model.Profile) []int {
	ids := make([]int, 0, len(profiles))
	for _, profile := range profiles {
		ids = append(ids, profile.UserID)
	}
	return ids
}

func intersectIDs(a, b []int) []int {
	member := make(map[int]bool, len(b))
	for _, id := range b {
		member[id] = true
	}
	result := make([]int, 0, len(a))
	for _, id := range a {
		if member[id] {
			result = append(result, id)
		}
	}
	return result
}

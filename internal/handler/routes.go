package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/medroadmap/penalty-board-api/internal/middleware"
	"github.com/medroadmap/penalty-board-api/internal/service"
)

// Handlers bundles every route handler for registration.
type Handlers struct {
	Auth       *AuthHandler
	Students   *StudentHandler
	Rules      *RuleHandler
	Thresholds *ThresholdHandler
	Penalties  *PenaltyHandler
	Notes      *NoteHandler
	Summary    *SummaryHandler
	SMS        *SMSHandler
}

// RegisterRoutes mounts the API under the given prefix. Everything except
// login is guarded by the session middleware, which is a pass-through when
// no admin credential is configured.
func RegisterRoutes(r *gin.Engine, prefix string, h Handlers, auth *service.AuthService) {
	api := r.Group(prefix)

	api.POST("/auth/login", h.Auth.Login)

	protected := api.Group("")
	protected.Use(middleware.Auth(auth))

	protected.POST("/auth/logout", h.Auth.Logout)

	protected.GET("/students", h.Students.List)
	protected.POST("/students", h.Students.Upsert)
	protected.PUT("/students/:id", h.Students.Update)
	protected.DELETE("/students/:id", h.Students.Delete)
	protected.POST("/students/import", h.Students.Import)

	protected.GET("/rules", h.Rules.List)
	protected.POST("/rules", h.Rules.Upsert)
	protected.DELETE("/rules/:id", h.Rules.Delete)

	protected.GET("/thresholds", h.Thresholds.List)
	protected.POST("/thresholds", h.Thresholds.Upsert)
	protected.DELETE("/thresholds/:id", h.Thresholds.Delete)

	protected.GET("/penalties", h.Penalties.List)
	protected.POST("/penalties", h.Penalties.Create)
	protected.DELETE("/penalties/:id", h.Penalties.Delete)
	protected.POST("/penalties/reset", h.Penalties.Reset)

	protected.GET("/notes", h.Notes.List)
	protected.POST("/notes", h.Notes.Upsert)
	protected.DELETE("/notes/:id", h.Notes.Delete)

	protected.GET("/summary/cumulative", h.Summary.Cumulative)
	protected.GET("/summary/export", h.Summary.Export)

	protected.GET("/sms/preview", h.SMS.Preview)
	protected.POST("/sms/send", h.SMS.Send)
}

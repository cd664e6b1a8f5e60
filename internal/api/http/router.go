package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/talentdesk/recruitment-service/internal/api/http/handlers"
	"github.com/talentdesk/recruitment-service/internal/auth"
	"github.com/talentdesk/recruitment-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Staff          *handlers.StaffHandler
	Candidates     *handlers.CandidatesHandler
	Companies      *handlers.CompaniesHandler
	Jobs           *handlers.JobsHandler
	Applications   *handlers.ApplicationsHandler
	Skills         *handlers.SkillsHandler
	CalendarTasks  *handlers.CalendarTasksHandler
	Projects       *handlers.ProjectsHandler
	AI             *handlers.AIHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/staff/login", cfg.Auth.LoginStaff)
	authGroup.Post("/candidates/login", cfg.Auth.LoginCandidate)
	authGroup.Post("/companies/login", cfg.Auth.LoginCompany)
	authGroup.Post("/candidates/register", cfg.Auth.RegisterCandidate)
	authGroup.Post("/companies/register", cfg.Auth.RegisterCompany)
	authGroup.Post("/password/reset/request", cfg.Auth.RequestPasswordReset)
	authGroup.Post("/password/reset/confirm", cfg.Auth.ConfirmPasswordReset)
	authGroup.Post("/password/change", cfg.AuthMiddleware.Handle, cfg.Auth.ChangePassword)

	// Staff administration is super_admin only and not region gated.
	staff := app.Group("/staff", cfg.AuthMiddleware.Handle,
		auth.RequireStaff(domain.StaffRoleSuperAdmin))
	staff.Get("/", cfg.Staff.List)
	staff.Post("/", cfg.Staff.Create)
	staff.Get("/:id", cfg.Staff.Get)
	staff.Put("/:id", cfg.Staff.Update)

	// Region-gated resources. Every principal passes the resolver; the
	// region gate rejects region-bound principals with no region.
	candidates := app.Group("/candidates", cfg.AuthMiddleware.Handle,
		auth.RequireStaff(), auth.RequireRegion())
	candidates.Get("/", cfg.Candidates.List)
	candidates.Post("/", cfg.Candidates.Create)
	candidates.Get("/:id", cfg.Candidates.Get)
	candidates.Put("/:id", cfg.Candidates.Update)
	candidates.Delete("/:id", cfg.Candidates.Delete)

	companies := app.Group("/companies", cfg.AuthMiddleware.Handle,
		auth.RequireStaff(), auth.RequireRegion())
	companies.Get("/", cfg.Companies.List)
	companies.Get("/:id", cfg.Companies.Get)
	companies.Put("/:id", cfg.Companies.Update)
	companies.Delete("/:id", cfg.Companies.Delete)

	jobs := app.Group("/jobs", cfg.AuthMiddleware.Handle, auth.RequireRegion())
	jobs.Get("/", cfg.Jobs.List)
	jobs.Get("/:id", cfg.Jobs.Get)
	jobsWrite := jobs.Group("", auth.RequireStaff())
	jobsWrite.Post("/", cfg.Jobs.Create)
	jobsWrite.Put("/:id", cfg.Jobs.Update)
	jobsWrite.Delete("/:id", cfg.Jobs.Delete)

	applications := app.Group("/applications", cfg.AuthMiddleware.Handle, auth.RequireRegion())
	applications.Get("/", cfg.Applications.List)
	applications.Get("/:id", cfg.Applications.Get)
	applications.Post("/", cfg.Applications.Submit)
	appsWrite := applications.Group("", auth.RequireStaff())
	appsWrite.Put("/:id/status", cfg.Applications.ChangeStatus)
	appsWrite.Delete("/:id", cfg.Applications.Delete)

	// The skill catalog is shared across regions.
	skills := app.Group("/skills", cfg.AuthMiddleware.Handle)
	skills.Get("/", cfg.Skills.List)
	skills.Get("/:id", cfg.Skills.Get)
	skillsWrite := skills.Group("", auth.RequireStaff())
	skillsWrite.Post("/", cfg.Skills.Create)
	skillsWrite.Put("/:id", cfg.Skills.Update)
	skillsWrite.Delete("/:id", cfg.Skills.Delete)

	tasks := app.Group("/calendar-tasks", cfg.AuthMiddleware.Handle,
		auth.RequireStaff(), auth.RequireRegion())
	tasks.Get("/", cfg.CalendarTasks.List)
	tasks.Post("/", cfg.CalendarTasks.Create)
	tasks.Get("/:id", cfg.CalendarTasks.Get)
	tasks.Put("/:id", cfg.CalendarTasks.Update)
	tasks.Delete("/:id", cfg.CalendarTasks.Delete)

	projects := app.Group("/projects", cfg.AuthMiddleware.Handle,
		auth.RequireStaff(), auth.RequireRegion())
	projects.Get("/", cfg.Projects.List)
	projects.Post("/", cfg.Projects.Create)
	projects.Get("/:id", cfg.Projects.Get)
	projects.Put("/:id", cfg.Projects.Update)
	projects.Delete("/:id", cfg.Projects.Delete)

	ai := app.Group("/ai", cfg.AuthMiddleware.Handle, auth.RequireStaff())
	ai.Post("/generate-email", cfg.AI.GenerateEmail)
}

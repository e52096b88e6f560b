package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Roster-api/internal/application/session"
	"github.com/jhoicas/Roster-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EmployeeUC *usecase.EmployeeUseCase
	ExportUC   *usecase.ExportUseCase
	Sessions   *session.Manager
	Languages  Languages
	SessionTTL time.Duration
	// SessionSecret firma la cookie de sesión; Issuer es el nombre del servicio.
	SessionSecret string
	Issuer        string
	Log           zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Employees (REST sin sesión)
	employees := api.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, deps.ExportUC, deps.Languages, deps.Log)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/export", employeeHandler.Export)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Rutas con sesión de vista (cookie roster_session)
	withSession := SessionMiddleware(SessionConfig{
		Sessions:  deps.Sessions,
		Languages: deps.Languages,
		TTL:       deps.SessionTTL,
		Secret:    deps.SessionSecret,
		Issuer:    deps.Issuer,
		Log:       deps.Log,
	})

	sessionHandler := NewSessionHandler()
	sess := api.Group("/session", withSession)
	sess.Get("/", sessionHandler.Get)
	sess.Put("/language", sessionHandler.SetLanguage)

	view := api.Group("/view", withSession)

	list := view.Group("/list")
	listHandler := NewListViewHandler()
	list.Get("/", listHandler.Get)
	list.Put("/mode", listHandler.SetMode)
	list.Post("/page/:page", listHandler.GoToPage)
	list.Post("/previous", listHandler.Previous)
	list.Post("/next", listHandler.Next)
	list.Post("/employees/:id/edit", listHandler.Edit)
	list.Post("/employees/:id/delete", listHandler.Delete)
	list.Post("/delete/confirm", listHandler.ConfirmDelete)
	list.Post("/delete/cancel", listHandler.CancelDelete)

	user := view.Group("/user")
	formHandler := NewFormViewHandler()
	user.Get("/:token", formHandler.Open)
	user.Patch("/:token", formHandler.SetField)
	user.Delete("/:token", formHandler.Delete)
	user.Post("/:token/save", formHandler.Save)
	user.Post("/:token/cancel", formHandler.Cancel)
}

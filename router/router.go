package router

import (
	"github.com/labstack/echo/v4"

	authCtrl "agrisync/pkg/auth/controller"
	financeCtrl "agrisync/pkg/finance/controllerImp"
	healthCtrl "agrisync/pkg/health/controllerImp"
)

// crud is the five-route surface every resource collection exposes.
type crud interface {
	List(echo.Context) error
	Create(echo.Context) error
	Get(echo.Context) error
	Update(echo.Context) error
	Patch(echo.Context) error
	Delete(echo.Context) error
}

type Collections struct {
	Fields    crud
	Crops     crud
	Inputs    crud
	Incomes   crud
	Expenses  crud
	Inventory crud
	Tasks     crud
}

func NewCollections(fields, crops, inputs, incomes, expenses, inventory, tasks crud) Collections {
	return Collections{
		Fields:    fields,
		Crops:     crops,
		Inputs:    inputs,
		Incomes:   incomes,
		Expenses:  expenses,
		Inventory: inventory,
		Tasks:     tasks,
	}
}

// New wires the full route table. Paths keep the upstream shape: everything
// under /api, trailing slashes included. requireToken guards every collection
// route plus the user list; login, refresh, register and health stay open.
func New(
	e *echo.Echo,
	requireToken echo.MiddlewareFunc,
	auth authCtrl.AuthController,
	cols Collections,
	export *financeCtrl.ExportCtrl,
	health *healthCtrl.HealthCtrl,
) *echo.Echo {
	e.GET("/health", health.Health)

	api := e.Group("/api")

	a := api.Group("/auth")
	a.POST("/login/", auth.Login)
	a.POST("/refresh/", auth.Refresh)
	a.POST("/register/", auth.Register)
	a.GET("/users/", auth.ListUsers, requireToken)

	registerCRUD(api, "/crops/fields", cols.Fields, requireToken)
	registerCRUD(api, "/crops/crops", cols.Crops, requireToken)
	registerCRUD(api, "/crops/inputs", cols.Inputs, requireToken)
	registerCRUD(api, "/finance/incomes", cols.Incomes, requireToken)
	registerCRUD(api, "/finance/expenses", cols.Expenses, requireToken)
	registerCRUD(api, "/inventory/items", cols.Inventory, requireToken)
	registerCRUD(api, "/tasks/tasks", cols.Tasks, requireToken)

	api.GET("/finance/export/", export.Export, requireToken)

	return e
}

func registerCRUD(api *echo.Group, base string, h crud, mw echo.MiddlewareFunc) {
	g := api.Group(base, mw)
	g.GET("/", h.List)
	g.POST("/", h.Create)
	g.GET("/:id/", h.Get)
	g.PUT("/:id/", h.Update)
	g.PATCH("/:id/", h.Patch)
	g.DELETE("/:id/", h.Delete)
}

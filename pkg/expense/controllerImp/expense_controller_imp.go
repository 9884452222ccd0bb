package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agrisync/entities"
	"agrisync/pkg/expense/repository"
	"agrisync/pkg/httperr"
)

type ExpenseCtrl struct{ repo repository.ExpenseRepository }

func New(repo repository.ExpenseRepository) *ExpenseCtrl { return &ExpenseCtrl{repo} }

type expenseReq struct {
	Category  *string          `json:"category"`
	Amount    *entities.Decimal `json:"amount"`
	DateSpent *entities.Date   `json:"date_spent"`
	Notes     *string          `json:"notes"`
}

func (req *expenseReq) validate() httperr.Fields {
	fields := httperr.Fields{}
	if req.Category == nil || *req.Category == "" {
		fields.Add("category", httperr.MsgRequired)
	}
	if req.Amount == nil {
		fields.Add("amount", httperr.MsgRequired)
	}
	if req.DateSpent == nil {
		fields.Add("date_spent", httperr.MsgRequired)
	}
	return fields
}

func (h *ExpenseCtrl) List(c echo.Context) error {
	out, err := h.repo.List()
	if err != nil {
		return httperr.Internal(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ExpenseCtrl) Create(c echo.Context) error {
	var req expenseReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	if fields := req.validate(); len(fields) > 0 {
		return httperr.Validation(c, fields)
	}
	ex := &entities.Expense{Category: *req.Category, Amount: *req.Amount, DateSpent: *req.DateSpent}
	if req.Notes != nil {
		ex.Notes = *req.Notes
	}
	if err := h.repo.Create(ex); err != nil {
		return httperr.Internal(c, err)
	}
	return c.JSON(http.StatusCreated, ex)
}

func (h *ExpenseCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	ex, err := h.repo.FindByID(uint(id))
	if err != nil {
		return httperr.NotFound(c)
	}
	return c.JSON(http.StatusOK, ex)
}

func (h *ExpenseCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	ex, err := h.repo.FindByID(uint(id))
	if err != nil {
		return httperr.NotFound(c)
	}
	var req expenseReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	if fields := req.validate(); len(fields) > 0 {
		return httperr.Validation(c, fields)
	}
	ex.Category = *req.Category
	ex.Amount = *req.Amount
	ex.DateSpent = *req.DateSpent
	// notes has no default: omitted keys keep the stored value
	if req.Notes != nil {
		ex.Notes = *req.Notes
	}
	if err := h.repo.Save(ex); err != nil {
		return httperr.Internal(c, err)
	}
	return c.JSON(http.StatusOK, ex)
}

func (h *ExpenseCtrl) Patch(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var req expenseReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	updates := map[string]any{}
	if req.Category != nil {
		if *req.Category == "" {
			return httperr.Field(c, "category", httperr.MsgRequired)
		}
		updates["category"] = *req.Category
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.DateSpent != nil {
		updates["date_spent"] = *req.DateSpent
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if len(updates) > 0 {
		if err := h.repo.Patch(uint(id), updates); err != nil {
			return httperr.NotFound(c)
		}
	}
	ex, err := h.repo.FindByID(uint(id))
	if err != nil {
		return httperr.NotFound(c)
	}
	return c.JSON(http.StatusOK, ex)
}

func (h *ExpenseCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return httperr.NotFound(c)
	}
	return c.NoContent(http.StatusNoContent)
}

package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agrisync/entities"
	"agrisync/pkg/httperr"
	"agrisync/pkg/income/repository"
)

type IncomeCtrl struct{ repo repository.IncomeRepository }

func New(repo repository.IncomeRepository) *IncomeCtrl { return &IncomeCtrl{repo} }

type incomeReq struct {
	Source       *string          `json:"source"`
	Amount       *entities.Decimal `json:"amount"`
	DateReceived *entities.Date   `json:"date_received"`
}

func (req *incomeReq) validate() httperr.Fields {
	fields := httperr.Fields{}
	if req.Source == nil || *req.Source == "" {
		fields.Add("source", httperr.MsgRequired)
	}
	if req.Amount == nil {
		fields.Add("amount", httperr.MsgRequired)
	}
	if req.DateReceived == nil {
		fields.Add("date_received", httperr.MsgRequired)
	}
	return fields
}

func (h *IncomeCtrl) List(c echo.Context) error {
	out, err := h.repo.List()
	if err != nil {
		return httperr.Internal(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *IncomeCtrl) Create(c echo.Context) error {
	var req incomeReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	if fields := req.validate(); len(fields) > 0 {
		return httperr.Validation(c, fields)
	}
	in := &entities.Income{Source: *req.Source, Amount: *req.Amount, DateReceived: *req.DateReceived}
	if err := h.repo.Create(in); err != nil {
		return httperr.Internal(c, err)
	}
	return c.JSON(http.StatusCreated, in)
}

func (h *IncomeCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	in, err := h.repo.FindByID(uint(id))
	if err != nil {
		return httperr.NotFound(c)
	}
	return c.JSON(http.StatusOK, in)
}

func (h *IncomeCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	in, err := h.repo.FindByID(uint(id))
	if err != nil {
		return httperr.NotFound(c)
	}
	var req incomeReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	if fields := req.validate(); len(fields) > 0 {
		return httperr.Validation(c, fields)
	}
	in.Source = *req.Source
	in.Amount = *req.Amount
	in.DateReceived = *req.DateReceived
	if err := h.repo.Save(in); err != nil {
		return httperr.Internal(c, err)
	}
	return c.JSON(http.StatusOK, in)
}

func (h *IncomeCtrl) Patch(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var req incomeReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	updates := map[string]any{}
	if req.Source != nil {
		if *req.Source == "" {
			return httperr.Field(c, "source", httperr.MsgRequired)
		}
		updates["source"] = *req.Source
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.DateReceived != nil {
		updates["date_received"] = *req.DateReceived
	}
	if len(updates) > 0 {
		if err := h.repo.Patch(uint(id), updates); err != nil {
			return httperr.NotFound(c)
		}
	}
	in, err := h.repo.FindByID(uint(id))
	if err != nil {
		return httperr.NotFound(c)
	}
	return c.JSON(http.StatusOK, in)
}

func (h *IncomeCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return httperr.NotFound(c)
	}
	return c.NoContent(http.StatusNoContent)
}

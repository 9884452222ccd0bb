package controllerImp

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agrisync/entities"
	"agrisync/pkg/httperr"
	"agrisync/pkg/inventory/repository"
)

type InventoryCtrl struct{ repo repository.InventoryRepository }

func New(repo repository.InventoryRepository) *InventoryCtrl { return &InventoryCtrl{repo} }

type itemReq struct {
	Name     *string          `json:"name"`
	Category *string          `json:"category"`
	Quantity *entities.Decimal `json:"quantity"`
	Unit     *string          `json:"unit"`
}

func (req *itemReq) validate() httperr.Fields {
	fields := httperr.Fields{}
	if req.Name == nil || *req.Name == "" {
		fields.Add("name", httperr.MsgRequired)
	}
	// quantity is required but unchecked otherwise; negative stock is allowed
	if req.Quantity == nil {
		fields.Add("quantity", httperr.MsgRequired)
	}
	if req.Category != nil && !entities.InventoryCategory(*req.Category).Valid() {
		fields.Add("category", fmt.Sprintf(httperr.MsgInvalidChoice, *req.Category))
	}
	if req.Unit != nil && !entities.InventoryUnit(*req.Unit).Valid() {
		fields.Add("unit", fmt.Sprintf(httperr.MsgInvalidChoice, *req.Unit))
	}
	return fields
}

func (h *InventoryCtrl) List(c echo.Context) error {
	out, err := h.repo.List()
	if err != nil {
		return httperr.Internal(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InventoryCtrl) Create(c echo.Context) error {
	var req itemReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	if fields := req.validate(); len(fields) > 0 {
		return httperr.Validation(c, fields)
	}
	it := &entities.InventoryItem{
		Name:     *req.Name,
		Category: entities.CategoryOther,
		Quantity: *req.Quantity,
		Unit:     entities.UnitUnits,
	}
	if req.Category != nil {
		it.Category = entities.InventoryCategory(*req.Category)
	}
	if req.Unit != nil {
		it.Unit = entities.InventoryUnit(*req.Unit)
	}
	if err := h.repo.Create(it); err != nil {
		return httperr.Internal(c, err)
	}
	return c.JSON(http.StatusCreated, it)
}

func (h *InventoryCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	it, err := h.repo.FindByID(uint(id))
	if err != nil {
		return httperr.NotFound(c)
	}
	return c.JSON(http.StatusOK, it)
}

func (h *InventoryCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	it, err := h.repo.FindByID(uint(id))
	if err != nil {
		return httperr.NotFound(c)
	}
	var req itemReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	if fields := req.validate(); len(fields) > 0 {
		return httperr.Validation(c, fields)
	}
	it.Name = *req.Name
	it.Quantity = *req.Quantity
	it.Category = entities.CategoryOther
	if req.Category != nil {
		it.Category = entities.InventoryCategory(*req.Category)
	}
	it.Unit = entities.UnitUnits
	if req.Unit != nil {
		it.Unit = entities.InventoryUnit(*req.Unit)
	}
	if err := h.repo.Save(it); err != nil {
		return httperr.Internal(c, err)
	}
	return c.JSON(http.StatusOK, it)
}

func (h *InventoryCtrl) Patch(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var req itemReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	updates := map[string]any{}
	if req.Name != nil {
		if *req.Name == "" {
			return httperr.Field(c, "name", httperr.MsgRequired)
		}
		updates["name"] = *req.Name
	}
	if req.Category != nil {
		if !entities.InventoryCategory(*req.Category).Valid() {
			return httperr.Field(c, "category", fmt.Sprintf(httperr.MsgInvalidChoice, *req.Category))
		}
		updates["category"] = *req.Category
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if req.Unit != nil {
		if !entities.InventoryUnit(*req.Unit).Valid() {
			return httperr.Field(c, "unit", fmt.Sprintf(httperr.MsgInvalidChoice, *req.Unit))
		}
		updates["unit"] = *req.Unit
	}
	if len(updates) > 0 {
		if err := h.repo.Patch(uint(id), updates); err != nil {
			return httperr.NotFound(c)
		}
	}
	it, err := h.repo.FindByID(uint(id))
	if err != nil {
		return httperr.NotFound(c)
	}
	return c.JSON(http.StatusOK, it)
}

func (h *InventoryCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return httperr.NotFound(c)
	}
	return c.NoContent(http.StatusNoContent)
}

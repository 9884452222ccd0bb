package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agrisync/entities"
	"agrisync/pkg/field/repository"
	"agrisync/pkg/httperr"
)

type FieldCtrl struct{ repo repository.FieldRepository }

func New(repo repository.FieldRepository) *FieldCtrl { return &FieldCtrl{repo} }

type fieldReq struct {
	Name                *string `json:"name"`
	LocationDescription *string `json:"location_description"`
}

func (req *fieldReq) validate() httperr.Fields {
	fields := httperr.Fields{}
	if req.Name == nil || *req.Name == "" {
		fields.Add("name", httperr.MsgRequired)
	}
	return fields
}

func (h *FieldCtrl) List(c echo.Context) error {
	out, err := h.repo.List()
	if err != nil {
		return httperr.Internal(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FieldCtrl) Create(c echo.Context) error {
	var req fieldReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	if fields := req.validate(); len(fields) > 0 {
		return httperr.Validation(c, fields)
	}
	f := &entities.Field{Name: *req.Name}
	if req.LocationDescription != nil {
		f.LocationDescription = *req.LocationDescription
	}
	if err := h.repo.Create(f); err != nil {
		return httperr.Internal(c, err)
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FieldCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	f, err := h.repo.FindByID(uint(id))
	if err != nil {
		return httperr.NotFound(c)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FieldCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	f, err := h.repo.FindByID(uint(id))
	if err != nil {
		return httperr.NotFound(c)
	}
	var req fieldReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	if fields := req.validate(); len(fields) > 0 {
		return httperr.Validation(c, fields)
	}
	f.Name = *req.Name
	// optional attribute without a default: omitted keys keep the stored value
	if req.LocationDescription != nil {
		f.LocationDescription = *req.LocationDescription
	}
	if err := h.repo.Save(f); err != nil {
		return httperr.Internal(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FieldCtrl) Patch(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var req fieldReq
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
	if req.LocationDescription != nil {
		updates["location_description"] = *req.LocationDescription
	}
	if len(updates) > 0 {
		if err := h.repo.Patch(uint(id), updates); err != nil {
			return httperr.NotFound(c)
		}
	}
	f, err := h.repo.FindByID(uint(id))
	if err != nil {
		return httperr.NotFound(c)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FieldCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return httperr.NotFound(c)
	}
	return c.NoContent(http.StatusNoContent)
}

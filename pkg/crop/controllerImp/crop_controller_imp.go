package controllerImp

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agrisync/entities"
	"agrisync/pkg/crop/repository"
	fieldRepo "agrisync/pkg/field/repository"
	"agrisync/pkg/httperr"
)

type CropCtrl struct {
	repo   repository.CropRepository
	fields fieldRepo.FieldRepository
}

func New(repo repository.CropRepository, fields fieldRepo.FieldRepository) *CropCtrl {
	return &CropCtrl{repo: repo, fields: fields}
}

type cropReq struct {
	Name                *string        `json:"name"`
	FieldID             *uint          `json:"field_id"`
	PlantingDate        *entities.Date `json:"planting_date"`
	ExpectedHarvestDate *entities.Date `json:"expected_harvest_date"`
	Status              *string        `json:"status"`
}

func (req *cropReq) validate() httperr.Fields {
	fields := httperr.Fields{}
	if req.Name == nil || *req.Name == "" {
		fields.Add("name", httperr.MsgRequired)
	}
	if req.FieldID == nil {
		fields.Add("field_id", httperr.MsgRequired)
	}
	if req.PlantingDate == nil {
		fields.Add("planting_date", httperr.MsgRequired)
	}
	if req.ExpectedHarvestDate == nil {
		fields.Add("expected_harvest_date", httperr.MsgRequired)
	}
	if req.Status != nil && !entities.CropStatus(*req.Status).Valid() {
		fields.Add("status", fmt.Sprintf(httperr.MsgInvalidChoice, *req.Status))
	}
	return fields
}

// resolveField turns an unknown field_id into a validation error, matching
// the unresolvable-reference taxonomy rather than a 404.
func (h *CropCtrl) resolveField(id uint) *string {
	if _, err := h.fields.FindByID(id); err != nil {
		msg := fmt.Sprintf(httperr.MsgInvalidPK, strconv.FormatUint(uint64(id), 10))
		return &msg
	}
	return nil
}

func (h *CropCtrl) List(c echo.Context) error {
	out, err := h.repo.List()
	if err != nil {
		return httperr.Internal(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) Create(c echo.Context) error {
	var req cropReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	if fields := req.validate(); len(fields) > 0 {
		return httperr.Validation(c, fields)
	}
	if msg := h.resolveField(*req.FieldID); msg != nil {
		return httperr.Field(c, "field_id", *msg)
	}
	cr := &entities.Crop{
		Name:                *req.Name,
		FieldID:             *req.FieldID,
		PlantingDate:        *req.PlantingDate,
		ExpectedHarvestDate: *req.ExpectedHarvestDate,
		Status:              entities.CropPlanted,
	}
	if req.Status != nil {
		cr.Status = entities.CropStatus(*req.Status)
	}
	if err := h.repo.Create(cr); err != nil {
		return httperr.Internal(c, err)
	}
	created, err := h.repo.FindByID(cr.ID)
	if err != nil {
		return httperr.Internal(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *CropCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	cr, err := h.repo.FindByID(uint(id))
	if err != nil {
		return httperr.NotFound(c)
	}
	return c.JSON(http.StatusOK, cr)
}

func (h *CropCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	cr, err := h.repo.FindByID(uint(id))
	if err != nil {
		return httperr.NotFound(c)
	}
	var req cropReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	if fields := req.validate(); len(fields) > 0 {
		return httperr.Validation(c, fields)
	}
	if msg := h.resolveField(*req.FieldID); msg != nil {
		return httperr.Field(c, "field_id", *msg)
	}
	cr.Name = *req.Name
	cr.FieldID = *req.FieldID
	cr.PlantingDate = *req.PlantingDate
	cr.ExpectedHarvestDate = *req.ExpectedHarvestDate
	cr.Status = entities.CropPlanted
	if req.Status != nil {
		cr.Status = entities.CropStatus(*req.Status)
	}
	if err := h.repo.Save(cr); err != nil {
		return httperr.Internal(c, err)
	}
	updated, err := h.repo.FindByID(cr.ID)
	if err != nil {
		return httperr.Internal(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *CropCtrl) Patch(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var req cropReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	if req.Status != nil && !entities.CropStatus(*req.Status).Valid() {
		return httperr.Field(c, "status", fmt.Sprintf(httperr.MsgInvalidChoice, *req.Status))
	}
	updates := map[string]any{}
	if req.Name != nil {
		if *req.Name == "" {
			return httperr.Field(c, "name", httperr.MsgRequired)
		}
		updates["name"] = *req.Name
	}
	if req.FieldID != nil {
		if msg := h.resolveField(*req.FieldID); msg != nil {
			return httperr.Field(c, "field_id", *msg)
		}
		updates["field_id"] = *req.FieldID
	}
	if req.PlantingDate != nil {
		updates["planting_date"] = *req.PlantingDate
	}
	if req.ExpectedHarvestDate != nil {
		updates["expected_harvest_date"] = *req.ExpectedHarvestDate
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) > 0 {
		if err := h.repo.Patch(uint(id), updates); err != nil {
			return httperr.NotFound(c)
		}
	}
	cr, err := h.repo.FindByID(uint(id))
	if err != nil {
		return httperr.NotFound(c)
	}
	return c.JSON(http.StatusOK, cr)
}

func (h *CropCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return httperr.NotFound(c)
	}
	return c.NoContent(http.StatusNoContent)
}

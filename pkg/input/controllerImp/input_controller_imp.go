package controllerImp

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agrisync/entities"
	cropRepo "agrisync/pkg/crop/repository"
	"agrisync/pkg/httperr"
	"agrisync/pkg/input/repository"
)

type InputCtrl struct {
	repo  repository.InputRepository
	crops cropRepo.CropRepository
}

func New(repo repository.InputRepository, crops cropRepo.CropRepository) *InputCtrl {
	return &InputCtrl{repo: repo, crops: crops}
}

type inputReq struct {
	Crop     *uint          `json:"crop"`
	Name     *string        `json:"name"`
	Quantity *string        `json:"quantity"`
	DateUsed *entities.Date `json:"date_used"`
}

func (req *inputReq) validate() httperr.Fields {
	fields := httperr.Fields{}
	if req.Crop == nil {
		fields.Add("crop", httperr.MsgRequired)
	}
	if req.Name == nil || *req.Name == "" {
		fields.Add("name", httperr.MsgRequired)
	}
	if req.Quantity == nil || *req.Quantity == "" {
		fields.Add("quantity", httperr.MsgRequired)
	}
	if req.DateUsed == nil {
		fields.Add("date_used", httperr.MsgRequired)
	}
	return fields
}

func (h *InputCtrl) resolveCrop(id uint) *string {
	if _, err := h.crops.FindByID(id); err != nil {
		msg := fmt.Sprintf(httperr.MsgInvalidPK, strconv.FormatUint(uint64(id), 10))
		return &msg
	}
	return nil
}

func (h *InputCtrl) List(c echo.Context) error {
	out, err := h.repo.List()
	if err != nil {
		return httperr.Internal(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InputCtrl) Create(c echo.Context) error {
	var req inputReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	if fields := req.validate(); len(fields) > 0 {
		return httperr.Validation(c, fields)
	}
	if msg := h.resolveCrop(*req.Crop); msg != nil {
		return httperr.Field(c, "crop", *msg)
	}
	in := &entities.InputUsed{
		CropID:   *req.Crop,
		Name:     *req.Name,
		Quantity: *req.Quantity,
		DateUsed: *req.DateUsed,
	}
	if err := h.repo.Create(in); err != nil {
		return httperr.Internal(c, err)
	}
	return c.JSON(http.StatusCreated, in)
}

func (h *InputCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	in, err := h.repo.FindByID(uint(id))
	if err != nil {
		return httperr.NotFound(c)
	}
	return c.JSON(http.StatusOK, in)
}

func (h *InputCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	in, err := h.repo.FindByID(uint(id))
	if err != nil {
		return httperr.NotFound(c)
	}
	var req inputReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	if fields := req.validate(); len(fields) > 0 {
		return httperr.Validation(c, fields)
	}
	if msg := h.resolveCrop(*req.Crop); msg != nil {
		return httperr.Field(c, "crop", *msg)
	}
	in.CropID = *req.Crop
	in.Name = *req.Name
	in.Quantity = *req.Quantity
	in.DateUsed = *req.DateUsed
	if err := h.repo.Save(in); err != nil {
		return httperr.Internal(c, err)
	}
	return c.JSON(http.StatusOK, in)
}

func (h *InputCtrl) Patch(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var req inputReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	updates := map[string]any{}
	if req.Crop != nil {
		if msg := h.resolveCrop(*req.Crop); msg != nil {
			return httperr.Field(c, "crop", *msg)
		}
		updates["crop_id"] = *req.Crop
	}
	if req.Name != nil {
		if *req.Name == "" {
			return httperr.Field(c, "name", httperr.MsgRequired)
		}
		updates["name"] = *req.Name
	}
	if req.Quantity != nil {
		if *req.Quantity == "" {
			return httperr.Field(c, "quantity", httperr.MsgRequired)
		}
		updates["quantity"] = *req.Quantity
	}
	if req.DateUsed != nil {
		updates["date_used"] = *req.DateUsed
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

func (h *InputCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return httperr.NotFound(c)
	}
	return c.NoContent(http.StatusNoContent)
}

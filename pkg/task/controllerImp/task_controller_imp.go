package controllerImp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agrisync/entities"
	userRepo "agrisync/pkg/auth/repository"
	"agrisync/pkg/httperr"
	"agrisync/pkg/task/repository"
)

type TaskCtrl struct {
	repo  repository.TaskRepository
	users userRepo.UserRepository
}

func New(repo repository.TaskRepository, users userRepo.UserRepository) *TaskCtrl {
	return &TaskCtrl{repo: repo, users: users}
}

// nullableUint distinguishes an absent assigned_to from an explicit null,
// so a PATCH can clear the assignee.
type nullableUint struct {
	Set   bool
	Value *uint
}

func (n *nullableUint) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Value = nil
		return nil
	}
	var v uint
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

type taskReq struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	AssignedTo  nullableUint   `json:"assigned_to"`
	DueDate     *entities.Date `json:"due_date"`
	Status      *string        `json:"status"`
}

func (req *taskReq) validate() httperr.Fields {
	fields := httperr.Fields{}
	if req.Title == nil || *req.Title == "" {
		fields.Add("title", httperr.MsgRequired)
	}
	if req.DueDate == nil {
		fields.Add("due_date", httperr.MsgRequired)
	}
	if req.Status != nil && !entities.TaskStatus(*req.Status).Valid() {
		fields.Add("status", fmt.Sprintf(httperr.MsgInvalidChoice, *req.Status))
	}
	return fields
}

func (h *TaskCtrl) resolveAssignee(id uint) *string {
	if _, err := h.users.FindByID(id); err != nil {
		msg := fmt.Sprintf(httperr.MsgInvalidPK, strconv.FormatUint(uint64(id), 10))
		return &msg
	}
	return nil
}

func (h *TaskCtrl) List(c echo.Context) error {
	out, err := h.repo.List()
	if err != nil {
		return httperr.Internal(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TaskCtrl) Create(c echo.Context) error {
	var req taskReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	if fields := req.validate(); len(fields) > 0 {
		return httperr.Validation(c, fields)
	}
	if req.AssignedTo.Value != nil {
		if msg := h.resolveAssignee(*req.AssignedTo.Value); msg != nil {
			return httperr.Field(c, "assigned_to", *msg)
		}
	}
	t := &entities.Task{
		Title:        *req.Title,
		AssignedToID: req.AssignedTo.Value,
		DueDate:      *req.DueDate,
		Status:       entities.TaskTodo,
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Status != nil {
		t.Status = entities.TaskStatus(*req.Status)
	}
	if err := h.repo.Create(t); err != nil {
		return httperr.Internal(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *TaskCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	t, err := h.repo.FindByID(uint(id))
	if err != nil {
		return httperr.NotFound(c)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TaskCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	t, err := h.repo.FindByID(uint(id))
	if err != nil {
		return httperr.NotFound(c)
	}
	var req taskReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	if fields := req.validate(); len(fields) > 0 {
		return httperr.Validation(c, fields)
	}
	if req.AssignedTo.Value != nil {
		if msg := h.resolveAssignee(*req.AssignedTo.Value); msg != nil {
			return httperr.Field(c, "assigned_to", *msg)
		}
	}
	t.Title = *req.Title
	// description and assigned_to have no defaults: omitted keys keep the
	// stored values, an explicit null clears the assignee
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.AssignedTo.Set {
		t.AssignedToID = req.AssignedTo.Value
	}
	t.DueDate = *req.DueDate
	t.Status = entities.TaskTodo
	if req.Status != nil {
		t.Status = entities.TaskStatus(*req.Status)
	}
	if err := h.repo.Save(t); err != nil {
		return httperr.Internal(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TaskCtrl) Patch(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var req taskReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	updates := map[string]any{}
	if req.Title != nil {
		if *req.Title == "" {
			return httperr.Field(c, "title", httperr.MsgRequired)
		}
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.AssignedTo.Set {
		if req.AssignedTo.Value != nil {
			if msg := h.resolveAssignee(*req.AssignedTo.Value); msg != nil {
				return httperr.Field(c, "assigned_to", *msg)
			}
		}
		updates["assigned_to_id"] = req.AssignedTo.Value
	}
	if req.DueDate != nil {
		updates["due_date"] = *req.DueDate
	}
	if req.Status != nil {
		if !entities.TaskStatus(*req.Status).Valid() {
			return httperr.Field(c, "status", fmt.Sprintf(httperr.MsgInvalidChoice, *req.Status))
		}
		updates["status"] = *req.Status
	}
	if len(updates) > 0 {
		if err := h.repo.Patch(uint(id), updates); err != nil {
			return httperr.NotFound(c)
		}
	}
	t, err := h.repo.FindByID(uint(id))
	if err != nil {
		return httperr.NotFound(c)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TaskCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return httperr.NotFound(c)
	}
	return c.NoContent(http.StatusNoContent)
}

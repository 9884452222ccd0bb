package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"agrisync/database"
	"agrisync/entities"
	userRepoImp "agrisync/pkg/auth/repositoryImp"
	taskRepoImp "agrisync/pkg/task/repositoryImp"
)

func setupCtrl(t *testing.T) (*echo.Echo, *TaskCtrl, *entities.Task) {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	u := &entities.User{Username: "amara", Email: "amara@farm.example", Password: "x", Role: entities.RoleWorker}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	due, _ := entities.ParseDate("2026-09-01")
	task := &entities.Task{
		Title:        "fix irrigation pump",
		Description:  "valve on the east line leaks",
		AssignedToID: &u.ID,
		DueDate:      due,
		Status:       entities.TaskTodo,
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("create task: %v", err)
	}
	return echo.New(), New(taskRepoImp.New(db), userRepoImp.New(db)), task
}

func putJSON(e *echo.Echo, id, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func TestUpdatePreservesOmittedDescriptionAndAssignee(t *testing.T) {
	e, ctrl, task := setupCtrl(t)

	c, rec := putJSON(e, "1", `{"title":"replace irrigation pump","due_date":"2026-09-15"}`)
	if err := ctrl.Update(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	var got entities.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.Title != "replace irrigation pump" {
		t.Errorf("title = %q", got.Title)
	}
	if got.Description != task.Description {
		t.Errorf("description = %q, want %q kept", got.Description, task.Description)
	}
	if got.AssignedToID == nil || *got.AssignedToID != *task.AssignedToID {
		t.Errorf("assigned_to = %v, want %d kept", got.AssignedToID, *task.AssignedToID)
	}
}

func TestUpdateExplicitNullClearsAssignee(t *testing.T) {
	e, ctrl, _ := setupCtrl(t)

	c, rec := putJSON(e, "1", `{"title":"fix irrigation pump","due_date":"2026-09-01","assigned_to":null}`)
	if err := ctrl.Update(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	var got entities.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.AssignedToID != nil {
		t.Errorf("assigned_to = %d, want cleared", *got.AssignedToID)
	}
}

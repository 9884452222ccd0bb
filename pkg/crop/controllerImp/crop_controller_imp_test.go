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
	cropRepoImp "agrisync/pkg/crop/repositoryImp"
	fieldRepoImp "agrisync/pkg/field/repositoryImp"
)

func setupCtrl(t *testing.T) (*echo.Echo, *CropCtrl, *entities.Field) {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	f := &entities.Field{Name: "north paddock", LocationDescription: "by the river"}
	if err := db.Create(f).Error; err != nil {
		t.Fatalf("create field: %v", err)
	}
	ctrl := New(cropRepoImp.New(db), fieldRepoImp.New(db))
	return echo.New(), ctrl, f
}

func postJSON(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateCropUnknownField(t *testing.T) {
	e, ctrl, _ := setupCtrl(t)

	c, rec := postJSON(e, `{"name":"maize","field_id":999,"planting_date":"2025-03-01","expected_harvest_date":"2025-08-01"}`)
	if err := ctrl.Create(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body map[string][]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body["field_id"]) == 0 {
		t.Errorf("expected field_id error, got %v", body)
	}
}

func TestCreateCropMissingFields(t *testing.T) {
	e, ctrl, _ := setupCtrl(t)

	c, rec := postJSON(e, `{"name":"maize"}`)
	if err := ctrl.Create(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body map[string][]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	for _, f := range []string{"field_id", "planting_date", "expected_harvest_date"} {
		if len(body[f]) == 0 {
			t.Errorf("expected %s error, got %v", f, body)
		}
	}
}

func TestCreateCropEmbedsFieldAndInputs(t *testing.T) {
	e, ctrl, f := setupCtrl(t)

	c, rec := postJSON(e, `{"name":"maize","field_id":1,"planting_date":"2025-03-01","expected_harvest_date":"2025-08-01"}`)
	if err := ctrl.Create(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body)
	}

	var got struct {
		ID      uint                 `json:"id"`
		Name    string               `json:"name"`
		Status  string               `json:"status"`
		Field   entities.Field       `json:"field"`
		Inputs  []entities.InputUsed `json:"inputs"`
		Planted string               `json:"planting_date"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.Field.ID != f.ID || got.Field.Name != f.Name {
		t.Errorf("embedded field = %+v, want %+v", got.Field, f)
	}
	if got.Inputs == nil || len(got.Inputs) != 0 {
		t.Errorf("inputs = %v, want empty list", got.Inputs)
	}
	if got.Status != "planted" {
		t.Errorf("status = %q, want default planted", got.Status)
	}
	if got.Planted != "2025-03-01" {
		t.Errorf("planting_date = %q, want 2025-03-01", got.Planted)
	}
}

func TestCropStatusChoiceValidated(t *testing.T) {
	e, ctrl, _ := setupCtrl(t)

	c, rec := postJSON(e, `{"name":"maize","field_id":1,"planting_date":"2025-03-01","expected_harvest_date":"2025-08-01","status":"rotten"}`)
	if err := ctrl.Create(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body map[string][]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body["status"]) == 0 {
		t.Errorf("expected status error, got %v", body)
	}
}

func TestGetUnknownCrop(t *testing.T) {
	e, ctrl, _ := setupCtrl(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := ctrl.Get(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

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
	expenseRepoImp "agrisync/pkg/expense/repositoryImp"
)

func TestUpdatePreservesOmittedNotes(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	spent, _ := entities.ParseDate("2026-08-01")
	ex := &entities.Expense{
		Category:  "fertilizer",
		Amount:    entities.NewDecimalFromInt(120),
		DateSpent: spent,
		Notes:     "split across both paddocks",
	}
	if err := db.Create(ex).Error; err != nil {
		t.Fatalf("create expense: %v", err)
	}
	e := echo.New()
	ctrl := New(expenseRepoImp.New(db))

	body := `{"category":"seed","amount":"89.90","date_spent":"2026-08-10"}`
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := ctrl.Update(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	var got entities.Expense
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.Category != "seed" {
		t.Errorf("category = %q", got.Category)
	}
	if got.Notes != ex.Notes {
		t.Errorf("notes = %q, want %q kept", got.Notes, ex.Notes)
	}
}

package database

import (
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"

	"agrisync/entities"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return db
}

func TestFieldDeleteCascades(t *testing.T) {
	db := setupDB(t)

	f := entities.Field{Name: "north paddock"}
	if err := db.Create(&f).Error; err != nil {
		t.Fatalf("create field: %v", err)
	}
	cr := entities.Crop{
		Name:                "maize",
		FieldID:             f.ID,
		PlantingDate:        entities.NewDate(2025, time.March, 1),
		ExpectedHarvestDate: entities.NewDate(2025, time.August, 1),
		Status:              entities.CropPlanted,
	}
	if err := db.Create(&cr).Error; err != nil {
		t.Fatalf("create crop: %v", err)
	}
	in := entities.InputUsed{CropID: cr.ID, Name: "urea", Quantity: "2 sacks", DateUsed: entities.NewDate(2025, time.April, 1)}
	if err := db.Create(&in).Error; err != nil {
		t.Fatalf("create input: %v", err)
	}

	if err := db.Delete(&entities.Field{}, f.ID).Error; err != nil {
		t.Fatalf("delete field: %v", err)
	}

	var crops, inputs int64
	db.Model(&entities.Crop{}).Count(&crops)
	db.Model(&entities.InputUsed{}).Count(&inputs)
	if crops != 0 {
		t.Errorf("crops remaining after field delete: %d", crops)
	}
	if inputs != 0 {
		t.Errorf("inputs remaining after field delete: %d", inputs)
	}
}

func TestUserDeleteClearsTaskAssignee(t *testing.T) {
	db := setupDB(t)

	u := entities.User{Username: "bob", Email: "b@x.com", Password: "x", Role: entities.RoleWorker}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	task := entities.Task{Title: "fix fence", AssignedToID: &u.ID, DueDate: entities.NewDate(2025, time.May, 1), Status: entities.TaskTodo}
	if err := db.Create(&task).Error; err != nil {
		t.Fatalf("create task: %v", err)
	}

	if err := db.Delete(&entities.User{}, u.ID).Error; err != nil {
		t.Fatalf("delete user: %v", err)
	}

	var got entities.Task
	if err := db.First(&got, task.ID).Error; err != nil {
		t.Fatalf("task deleted along with user: %v", err)
	}
	if got.AssignedToID != nil {
		t.Errorf("assigned_to not cleared: %v", *got.AssignedToID)
	}
}

func TestInventoryLastUpdatedStamped(t *testing.T) {
	db := setupDB(t)

	it := entities.InventoryItem{Name: "diesel", Category: entities.CategoryFuel, Unit: entities.UnitLiters}
	if err := db.Create(&it).Error; err != nil {
		t.Fatalf("create item: %v", err)
	}
	if it.LastUpdated.IsZero() {
		t.Fatal("last_updated not set on create")
	}

	first := it.LastUpdated
	time.Sleep(1100 * time.Millisecond) // sqlite second resolution
	if err := db.Model(&entities.InventoryItem{}).Where("id = ?", it.ID).Updates(map[string]any{"name": "diesel fuel"}).Error; err != nil {
		t.Fatalf("update item: %v", err)
	}

	var got entities.InventoryItem
	if err := db.First(&got, it.ID).Error; err != nil {
		t.Fatalf("reload item: %v", err)
	}
	if !got.LastUpdated.After(first) {
		t.Errorf("last_updated not advanced: %v -> %v", first, got.LastUpdated)
	}
}

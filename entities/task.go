package entities

import "time"

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskDone:
		return true
	}
	return false
}

// Task may be assigned to a user; deleting that user clears the assignment
// instead of removing the task.
type Task struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Title        string     `gorm:"size:200" json:"title"`
	Description  string     `json:"description"`
	AssignedToID *uint      `gorm:"index" json:"assigned_to"`
	AssignedTo   *User      `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	DueDate      Date       `json:"due_date"`
	Status       TaskStatus `gorm:"size:20;default:todo" json:"status"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

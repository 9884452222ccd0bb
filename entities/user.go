package entities

// Role is the account role carried in token claims. It is readable by clients
// but no endpoint currently gates on it.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleWorker Role = "worker"
)

func (r Role) Valid() bool { return r == RoleAdmin || r == RoleWorker }

type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Username  string `gorm:"uniqueIndex;size:150" json:"username"`
	Email     string `gorm:"uniqueIndex;size:254" json:"email"`
	Password  string `json:"-"` // bcrypt hash, never rendered
	FirstName string `gorm:"size:150" json:"first_name"`
	LastName  string `gorm:"size:150" json:"last_name"`
	Role      Role   `gorm:"size:20;default:worker" json:"role"`
}

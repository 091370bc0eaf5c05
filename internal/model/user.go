// File: internal/model/user.go
package model

// Role 使用者角色
type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
	RoleHost  Role = "Host"
)

// Valid 回報 r 是否為已知角色
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleHost:
		return true
	}
	return false
}

type User struct {
	ID          int    `db:"id" json:"id"`
	FirstName   string `db:"first_name" json:"first_name"`
	LastName    string `db:"last_name" json:"last_name"`
	Email       string `db:"email" json:"email"`
	Password    string `db:"password" json:"-"`
	PhoneNumber string `db:"phone_number" json:"phone_number"`
	Role        Role   `db:"role" json:"role"`
}

// File: internal/api/user.go
package api

import "road-ready/internal/model"

// UserDTO 使用者讀取/更新模型（不含密碼）
// swagger:model api.UserDTO
type UserDTO struct {
	UserID      int    `json:"userId" example:"1"`
	FirstName   string `json:"firstName" validate:"required,max=100" example:"Alice"`
	LastName    string `json:"lastName" validate:"required,max=100" example:"Wong"`
	Email       string `json:"email" validate:"required,email,max=200" example:"alice@example.com"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,max=20" example:"0912345678"`
	Role        string `json:"role" validate:"omitempty,oneof=User Admin Host" example:"User"`
}

// CreateUserRequest 管理員建立使用者
// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	FirstName   string `json:"firstName" validate:"required,max=100" example:"Alice"`
	LastName    string `json:"lastName" validate:"required,max=100" example:"Wong"`
	Email       string `json:"email" validate:"required,email,max=200" example:"alice@example.com"`
	Password    string `json:"password" validate:"required,min=6,max=100" example:"Secret123!"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,max=20" example:"0912345678"`
	Role        string `json:"role" validate:"required,oneof=User Admin Host" example:"User"`
}

// UserUpdateRequest 更新自己的資料，空欄位表示不變更
// swagger:model api.UserUpdateRequest
type UserUpdateRequest struct {
	FirstName   string `json:"firstName" validate:"required,max=100" example:"Alice"`
	LastName    string `json:"lastName" validate:"required,max=100" example:"Wong"`
	Email       string `json:"email" validate:"required,email,max=200" example:"alice@example.com"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,max=20" example:"0912345678"`
}

func ToUserDTO(u model.User) UserDTO {
	return UserDTO{
		UserID:      u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        string(u.Role),
	}
}

func ToUserDTOs(users []model.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserDTO(u))
	}
	return out
}

func UserDTOToModel(d UserDTO) model.User {
	return model.User{
		ID:          d.UserID,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Email:       d.Email,
		PhoneNumber: d.PhoneNumber,
		Role:        model.Role(d.Role),
	}
}

// Apply 覆寫 u 的所有可修改欄位；PhoneNumber 為空時會清空
func (r UserUpdateRequest) Apply(u *model.User) {
	u.FirstName = r.FirstName
	u.LastName = r.LastName
	u.Email = r.Email
	u.PhoneNumber = r.PhoneNumber
}

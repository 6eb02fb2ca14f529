package models

import "time"

// Perfil do usuário, criado em um segundo passo após o cadastro.
// Pode não existir se essa escrita falhar (ver auth handler).
type Profile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	FullName string `gorm:"size:100" json:"full_name"`
	Phone    string `gorm:"size:20" json:"phone"`
	IsAdmin  bool   `gorm:"default:false" json:"is_admin"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

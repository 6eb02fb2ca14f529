package models

import (
	"strings"
	"time"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	FullName string `gorm:"size:100;not null" json:"full_name"`
	Email    string `gorm:"size:100;not null" json:"email"`
	Phone    string `gorm:"size:20;not null" json:"phone"`

	// Data e hora no formato ISO ("2006-01-02" / "15:04"), então a
	// ordem lexicográfica coincide com a cronológica.
	AppointmentDate string `gorm:"size:10;not null" json:"appointment_date"`
	AppointmentTime string `gorm:"size:5;not null" json:"appointment_time"`

	TattooDescription string `gorm:"type:text;not null" json:"tattoo_description"`
	TattooSize        string `gorm:"size:20" json:"tattoo_size"`
	BodyPlacement     string `gorm:"size:100" json:"body_placement"`

	// URLs públicas separadas por vírgula; NULL quando não há anexos.
	ReferenceImages *string `gorm:"type:text" json:"reference_images"`

	Notes  string `gorm:"type:text" json:"notes"`
	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReferenceImageList separa as URLs de referência, tolerando espaços em
// volta de cada entrada. Retorna nil quando não há anexos.
func (a *Appointment) ReferenceImageList() []string {
	if a.ReferenceImages == nil {
		return nil
	}

	var urls []string
	for _, part := range strings.Split(*a.ReferenceImages, ",") {
		if url := strings.TrimSpace(part); url != "" {
			urls = append(urls, url)
		}
	}
	return urls
}

package dto

import (
	"time"

	"github.com/goldinkstudio/tattoo-booking-api/internal/models"
	"github.com/goldinkstudio/tattoo-booking-api/internal/money"
)

type TattooListDTO struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`

	// Formatado na convenção pt-BR apenas na resposta.
	PriceFormatted string `json:"price_formatted"`

	ImageURL   string `json:"image_url"`
	IsFeatured bool   `json:"is_featured"`

	CategoryName string `json:"category_name,omitempty"`
	CategorySlug string `json:"category_slug,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func NewTattooListDTO(t *models.Tattoo) TattooListDTO {
	out := TattooListDTO{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Price:          t.Price,
		PriceFormatted: money.FormatBRL(t.Price),
		ImageURL:       t.ImageURL,
		IsFeatured:     t.IsFeatured,
		CreatedAt:      t.CreatedAt,
	}

	if t.Category != nil {
		out.CategoryName = t.Category.Name
		out.CategorySlug = t.Category.Slug
	}

	return out
}

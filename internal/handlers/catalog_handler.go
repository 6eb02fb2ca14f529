package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/goldinkstudio/tattoo-booking-api/internal/dto"
	"github.com/goldinkstudio/tattoo-booking-api/internal/httperr"
	"github.com/goldinkstudio/tattoo-booking-api/internal/httpresp"
	"github.com/goldinkstudio/tattoo-booking-api/internal/models"
)

const featuredLimit = 6

type CatalogHandler struct {
	db *gorm.DB
}

func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

// ======================================================
// CATEGORIES
// ======================================================

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	var categories []models.Category
	if err := h.db.
		Order("display_order ASC").
		Find(&categories).Error; err != nil {

		log.Printf("list categories failed: %v", err)
		httperr.Internal(c, "failed_to_list_categories", "Erro ao listar categorias.")
		return
	}

	httpresp.List(c, categories)
}

// ======================================================
// TATTOOS (galeria; filtro por categoria re-consulta)
// ======================================================

func (h *CatalogHandler) ListTattoos(c *gin.Context) {
	q := h.db.Preload("Category")

	if categoryIDStr := c.Query("category_id"); categoryIDStr != "" {
		categoryID, err := strconv.ParseUint(categoryIDStr, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_category", "Categoria inválida.")
			return
		}
		q = q.Where("category_id = ?", uint(categoryID))
	}

	var tattoos []models.Tattoo
	if err := q.
		Order("created_at DESC").
		Find(&tattoos).Error; err != nil {

		log.Printf("list tattoos failed: %v", err)
		httperr.Internal(c, "failed_to_list_tattoos", "Erro ao listar tatuagens.")
		return
	}

	out := make([]dto.TattooListDTO, 0, len(tattoos))
	for i := range tattoos {
		out = append(out, dto.NewTattooListDTO(&tattoos[i]))
	}

	httpresp.List(c, out)
}

// ======================================================
// FEATURED (vitrine da página inicial)
// ======================================================

func (h *CatalogHandler) ListFeatured(c *gin.Context) {
	var tattoos []models.Tattoo
	if err := h.db.
		Preload("Category").
		Where("is_featured = ?", true).
		Limit(featuredLimit).
		Find(&tattoos).Error; err != nil {

		log.Printf("list featured tattoos failed: %v", err)
		httperr.Internal(c, "failed_to_list_tattoos", "Erro ao listar tatuagens.")
		return
	}

	out := make([]dto.TattooListDTO, 0, len(tattoos))
	for i := range tattoos {
		out = append(out, dto.NewTattooListDTO(&tattoos[i]))
	}

	c.JSON(http.StatusOK, out)
}

package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/goldinkstudio/tattoo-booking-api/internal/domain/appointment"
	"github.com/goldinkstudio/tattoo-booking-api/internal/httperr"
	"github.com/goldinkstudio/tattoo-booking-api/internal/httpresp"
	"github.com/goldinkstudio/tattoo-booking-api/internal/middleware"
	ucAppointment "github.com/goldinkstudio/tattoo-booking-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AdminAppointmentHandler struct {
	listUC   *ucAppointment.ListAppointments
	statusUC *ucAppointment.UpdateStatus
	deleteUC *ucAppointment.DeleteAppointment
}

func NewAdminAppointmentHandler(
	listUC *ucAppointment.ListAppointments,
	statusUC *ucAppointment.UpdateStatus,
	deleteUC *ucAppointment.DeleteAppointment,
) *AdminAppointmentHandler {
	return &AdminAppointmentHandler{
		listUC:   listUC,
		statusUC: statusUC,
		deleteUC: deleteUC,
	}
}

// --------- Requests ---------

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// LIST (todos os agendamentos, busca + filtro de status)
// ======================================================

func (h *AdminAppointmentHandler) List(c *gin.Context) {
	query := domain.Query{
		Status: strings.TrimSpace(c.Query("status")),
		Search: strings.TrimSpace(c.Query("search")),
	}

	appointments, err := h.listUC.Execute(
		c.Request.Context(),
		domain.AllScope(),
		query,
	)
	if err != nil {
		log.Printf("admin list appointments failed: %v", err)
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, appointments)
}

// ======================================================
// UPDATE STATUS
// ======================================================

func (h *AdminAppointmentHandler) UpdateStatus(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.statusUC.Execute(
		c.Request.Context(),
		adminID,
		uint(id),
		domain.Status(req.Status),
	)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Status inválido.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Transição de status não permitida.")
		default:
			log.Printf("update appointment status failed: %v", err)
			httperr.Internal(c, "failed_to_update_status", "Erro ao atualizar status.")
		}
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AdminAppointmentHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), adminID, uint(id)); err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		log.Printf("delete appointment failed: %v", err)
		httperr.Internal(c, "failed_to_delete_appointment", "Erro ao excluir agendamento.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

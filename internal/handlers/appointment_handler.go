package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/goldinkstudio/tattoo-booking-api/internal/domain/appointment"
	"github.com/goldinkstudio/tattoo-booking-api/internal/httperr"
	"github.com/goldinkstudio/tattoo-booking-api/internal/httpresp"
	"github.com/goldinkstudio/tattoo-booking-api/internal/middleware"
	ucAppointment "github.com/goldinkstudio/tattoo-booking-api/internal/usecase/appointment"
)

const maxReferenceImageBytes = 10 << 20 // 10 MB por arquivo

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	listUC   *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	listUC *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		listUC:   listUC,
	}
}

// ======================================================
// CREATE (multipart: campos + imagens de referência)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	in := ucAppointment.CreateAppointmentInput{
		UserID:            userID,
		FullName:          strings.TrimSpace(c.PostForm("full_name")),
		Email:             strings.TrimSpace(c.PostForm("email")),
		Phone:             strings.TrimSpace(c.PostForm("phone")),
		AppointmentDate:   strings.TrimSpace(c.PostForm("appointment_date")),
		AppointmentTime:   strings.TrimSpace(c.PostForm("appointment_time")),
		TattooDescription: strings.TrimSpace(c.PostForm("tattoo_description")),
		TattooSize:        strings.TrimSpace(c.PostForm("tattoo_size")),
		BodyPlacement:     strings.TrimSpace(c.PostForm("body_placement")),
		Notes:             strings.TrimSpace(c.PostForm("notes")),
	}

	required := []string{
		in.FullName,
		in.Email,
		in.Phone,
		in.AppointmentDate,
		in.AppointmentTime,
		in.TattooDescription,
		in.TattooSize,
		in.BodyPlacement,
	}
	for _, field := range required {
		if field == "" {
			httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
			return
		}
	}

	files, err := h.readUploads(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_upload", "Falha ao ler imagens de referência.")
		return
	}
	in.Files = files

	ap, err := h.createUC.Execute(c.Request.Context(), in)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_date_or_time"):
			httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		case httperr.IsBusiness(err, "date_in_past"):
			httperr.BadRequest(c, "date_in_past", "A data deve ser hoje ou depois.")
		default:
			log.Printf("create appointment failed: %v", err)
			httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		}
		return
	}

	c.JSON(http.StatusCreated, ap)
}

func (h *AppointmentHandler) readUploads(c *gin.Context) ([]ucAppointment.Upload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// formulário sem arquivos também é válido
		if err == http.ErrNotMultipart {
			return nil, nil
		}
		return nil, err
	}

	headers := form.File["reference_images"]
	if len(headers) == 0 {
		return nil, nil
	}

	uploads := make([]ucAppointment.Upload, 0, len(headers))
	for _, fh := range headers {
		if fh.Size > maxReferenceImageBytes {
			return nil, fmt.Errorf("file %s exceeds %d bytes", fh.Filename, maxReferenceImageBytes)
		}

		f, err := fh.Open()
		if err != nil {
			return nil, err
		}

		data, err := io.ReadAll(io.LimitReader(f, maxReferenceImageBytes))
		f.Close()
		if err != nil {
			return nil, err
		}

		uploads = append(uploads, ucAppointment.Upload{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	return uploads, nil
}

// ======================================================
// LIST (somente os agendamentos do próprio usuário)
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	query := domain.Query{
		Status: strings.TrimSpace(c.Query("status")),
	}

	appointments, err := h.listUC.Execute(
		c.Request.Context(),
		domain.OwnerScope(userID),
		query,
	)
	if err != nil {
		log.Printf("list appointments failed: %v", err)
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, appointments)
}

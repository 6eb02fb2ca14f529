package appointment

import (
	"context"
	"fmt"
	"log"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/goldinkstudio/tattoo-booking-api/internal/audit"
	domain "github.com/goldinkstudio/tattoo-booking-api/internal/domain/appointment"
	"github.com/goldinkstudio/tattoo-booking-api/internal/httperr"
	"github.com/goldinkstudio/tattoo-booking-api/internal/models"
	"github.com/goldinkstudio/tattoo-booking-api/internal/storage"
	"github.com/goldinkstudio/tattoo-booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// Upload é um arquivo de referência anexado ao formulário.
type Upload struct {
	Name        string
	ContentType string
	Data        []byte
}

type CreateAppointmentInput struct {
	UserID uint

	FullName string
	Email    string
	Phone    string

	AppointmentDate string
	AppointmentTime string

	TattooDescription string
	TattooSize        string
	BodyPlacement     string
	Notes             string

	Files []Upload
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	store storage.ObjectStore
	audit auditDispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	store storage.ObjectStore,
	audit auditDispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		store: store,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Data / hora no fuso do estúdio
	// --------------------------------------------------
	date, err := time.ParseInLocation("2006-01-02", in.AppointmentDate, timezone.Location())
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := time.Parse("15:04", in.AppointmentTime); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if date.Before(timezone.Today()) {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	// --------------------------------------------------
	// 2️⃣ Upload das referências (todas ou nenhuma)
	// --------------------------------------------------
	referenceImages, err := uc.uploadAll(ctx, in.UserID, in.Files)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Criação com status inicial centralizado
	// --------------------------------------------------
	ap := &models.Appointment{
		UserID:            in.UserID,
		FullName:          in.FullName,
		Email:             in.Email,
		Phone:             in.Phone,
		AppointmentDate:   in.AppointmentDate,
		AppointmentTime:   in.AppointmentTime,
		TattooDescription: in.TattooDescription,
		TattooSize:        in.TattooSize,
		BodyPlacement:     in.BodyPlacement,
		ReferenceImages:   referenceImages,
		Notes:             in.Notes,
		Status:            string(domain.InitialStatus()),
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// uploadAll envia todos os arquivos em paralelo e só retorna as URLs
// quando TODOS terminam; a primeira falha aborta o lote inteiro, e
// nesse caso nenhum registro é criado.
func (uc *CreateAppointment) uploadAll(
	ctx context.Context,
	userID uint,
	files []Upload,
) (*string, error) {

	if len(files) == 0 {
		return nil, nil
	}

	urls := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			key := objectKey(userID, file.Name)

			contentType := file.ContentType
			if contentType == "" {
				contentType = mime.TypeByExtension(filepath.Ext(file.Name))
			}

			if err := uc.store.Upload(gctx, key, file.Data, contentType); err != nil {
				return err
			}

			// miniatura é melhor-esforço: nunca derruba o agendamento
			if thumb, err := storage.Thumbnail(file.Data); err == nil {
				if err := uc.store.Upload(gctx, storage.ThumbnailKey(key), thumb, "image/webp"); err != nil {
					log.Printf("thumbnail upload failed for %s: %v", key, err)
				}
			} else {
				log.Printf("thumbnail generation failed for %s: %v", key, err)
			}

			urls[i] = uc.store.PublicURL(key)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	joined := strings.Join(urls, ",")
	return &joined, nil
}

func objectKey(userID uint, fileName string) string {
	ext := filepath.Ext(fileName)
	return fmt.Sprintf(
		"%d/%d-%s%s",
		userID,
		time.Now().UnixMilli(),
		uuid.NewString()[:8],
		ext,
	)
}

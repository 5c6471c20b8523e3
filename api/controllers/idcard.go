package controllers

import (
	"net/http"

	"github.com/Priyanshpaila/Recruitment-backend/api/middleware"
	"github.com/Priyanshpaila/Recruitment-backend/api/responses"
	"github.com/Priyanshpaila/Recruitment-backend/api/validators"
	"github.com/Priyanshpaila/Recruitment-backend/internal/idcard"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/config"
	pkgerrors "github.com/Priyanshpaila/Recruitment-backend/pkg/errors"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/logger"
	"github.com/google/uuid"
)

// IDCardUpsert creates or replaces the caller's card details.
func IDCardUpsert(svc idcard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "idcard service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID == uuid.Nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}

		var body idcard.UpsertRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Upsert(r.Context(), userID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// IDCardGet returns the caller's card with the photo id resolved from their
// profile.
func IDCardGet(svc idcard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "idcard service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID == uuid.Nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}

		result, err := svc.Get(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// IDCardUploadSignature stores the multipart signature image on the card.
func IDCardUploadSignature(svc idcard.Service, cfg config.UploadConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "idcard service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID == uuid.Nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}

		file, header, err := formFile(w, r, "signature", cfg.MaxUploadBytes())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		defer file.Close()

		result, err := svc.UploadSignature(r.Context(), userID, idcard.Upload{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			SizeBytes:   header.Size,
			Body:        file,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// IDCardStreamSignature serves stored signature bytes by attachment id.
func IDCardStreamSignature(svc idcard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "idcard service unavailable"))
			return
		}

		fileID, err := fileIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		attachment, body, err := svc.StreamSignature(r.Context(), fileID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		defer body.Close()

		streamAttachment(w, attachment.ContentType, attachment.FileName, attachment.SizeBytes, body)
	}
}

package middleware

import (
	"context"
	"net/http"

	"github.com/Priyanshpaila/Recruitment-backend/api/responses"
	"github.com/Priyanshpaila/Recruitment-backend/api/validators"
	pkgAuth "github.com/Priyanshpaila/Recruitment-backend/pkg/auth"
	pkgerrors "github.com/Priyanshpaila/Recruitment-backend/pkg/errors"
	"github.com/Priyanshpaila/Recruitment-backend/pkg/logger"
	"github.com/google/uuid"

	"github.com/Priyanshpaila/Recruitment-backend/pkg/db/models"
)

// SessionVerifier is the session store surface the auth gate needs.
type SessionVerifier interface {
	FindActiveByTokenID(ctx context.Context, tokenID string) (*models.Session, error)
	Touch(ctx context.Context, sessionID uuid.UUID) error
}

// Auth validates the bearer session token and seeds the request context with
// the principal. Every rejection path returns the same unauthorized response
// so callers cannot probe which check failed.
func Auth(store SessionVerifier, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := validators.ExtractBearer(r)
			if !ok {
				rejectUnauthorized(w, r, logg)
				return
			}

			parsed := pkgAuth.ParseSessionToken(raw)
			if parsed == nil {
				rejectUnauthorized(w, r, logg)
				return
			}

			session, err := store.FindActiveByTokenID(r.Context(), parsed.TokenID)
			if err != nil {
				rejectUnauthorized(w, r, logg)
				return
			}

			if !pkgAuth.VerifySessionSecret(parsed.Secret, session.SecretHash) {
				rejectUnauthorized(w, r, logg)
				return
			}

			// Best effort; a failed touch must not fail the request.
			_ = store.Touch(r.Context(), session.ID)

			ctx := WithPrincipal(r.Context(), Principal{
				UserID:    session.UserID,
				SessionID: session.ID,
				TokenID:   session.TokenID,
			})
			if logg != nil {
				ctx = logg.WithUserID(ctx, session.UserID.String())
				ctx = logg.WithSessionID(ctx, session.ID.String())
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func rejectUnauthorized(w http.ResponseWriter, r *http.Request, logg *logger.Logger) {
	responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid or missing credentials"))
}

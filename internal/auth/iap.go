package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/orgchart/orgchart-backend/internal/api/apierror"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/idtoken"
)

const (
	iapIssuer     = "https://cloud.google.com/iap"
	maxClockSkew  = 30 * time.Second
	contextEmail  = contextKey(1)
	headerJWT     = "X-Goog-IAP-JWT-Assertion"
	headerIAPUser = "X-Goog-Authenticated-User-Email"
)

type (
	contextKey int
	Middleware func(next http.Handler) http.Handler

	validatorFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)
)

// StaticUser returns a middleware that sets the email address of the authenticated user to the given value
func StaticUser(email string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithEmail(r.Context(), email)))
		})
	}
}

// ValidateIAPJWT returns a middleware that validates the X-Goog-IAP-JWT-Assertion header and sets the email address of
// the authenticated user to the value of the X-Goog-Authenticated-User-Email header
func ValidateIAPJWT(aud string, log logrus.FieldLogger) Middleware {
	return validateIAPJWT(aud, idtoken.Validate, log)
}

func validateIAPJWT(aud string, validate validatorFunc, log logrus.FieldLogger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			unauthorized := func(msg string) {
				apierror.Write(w, r, log, apierror.New(http.StatusUnauthorized, "unauthorized", "%s", msg))
			}

			payload, err := validate(r.Context(), r.Header.Get(headerJWT), aud)
			if err != nil {
				log.WithError(err).Debug("invalid iap token")
				unauthorized("Invalid JWT token")
				return
			}

			if time.Unix(payload.IssuedAt, 0).After(time.Now().Add(maxClockSkew)) {
				unauthorized("JWT token is in the future")
				return
			}

			if payload.Issuer != iapIssuer {
				unauthorized("Invalid JWT token issuer")
				return
			}

			_, email, _ := strings.Cut(r.Header.Get(headerIAPUser), ":")
			next.ServeHTTP(w, r.WithContext(WithEmail(r.Context(), email)))
		})
	}
}

// WithEmail returns a copy of ctx holding the email address of the authenticated user
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, contextEmail, email)
}

// GetEmail returns the email address of the authenticated user that is stored in the context
func GetEmail(ctx context.Context) (string, error) {
	email, ok := ctx.Value(contextEmail).(string)
	if !ok || email == "" {
		return "", fmt.Errorf("no email in context")
	}
	return email, nil
}

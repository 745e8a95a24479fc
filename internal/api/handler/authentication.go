package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ArshadAliDS/Amazon/internal/domain"
	"github.com/ArshadAliDS/Amazon/internal/usecases/authenticating"
	"github.com/ArshadAliDS/Amazon/pkg/apiErrors"
)

// Login exchanges the gate password for a session token.
func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		resp, err := service.Login(req.Password)
		if err != nil {
			if authenticating.IsCredentialsError(err) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "invalid password", nil)
				return
			}
			logrus.WithError(err).Error("login failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "error generating session token", nil)
			return
		}

		writeJSON(w, resp)
	}
}

package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/likhonsheikh/tetheros-go/errors"
	"github.com/likhonsheikh/tetheros-go/models"
	"github.com/likhonsheikh/tetheros-go/services"
	"github.com/likhonsheikh/tetheros-go/types/requests"
	"github.com/likhonsheikh/tetheros-go/types/responses"
	"github.com/likhonsheikh/tetheros-go/utils"
)

type AuthHandler interface {
	VerifyAccessKey(w http.ResponseWriter, r *http.Request)

	ServeHttp(*http.ServeMux)
}

func NewAuthHandler(authService services.AuthService, log *zap.Logger) AuthHandler {
	return &authHandler{
		handler: handler{authService: authService, log: log},
	}
}

type authHandler struct {
	handler
}

func (a *authHandler) ServeHttp(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/auth/verify", a.VerifyAccessKey)
}

func (a *authHandler) VerifyAccessKey(w http.ResponseWriter, r *http.Request) {
	req := new(requests.VerifyAccessKeyRequest)
	if err := utils.Bind(r, req); err != nil {
		errors.HandleBindError(err).Serialize(w)
		return
	}

	session, err := a.authService.Verify(r.Context(), req.AccessKey)
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	utils.JSON(w, 200, &responses.Response[*models.Session]{
		Status: "successful",
		Data:   session,
	})
}

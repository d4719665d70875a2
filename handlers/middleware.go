package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/likhonsheikh/tetheros-go/errors"
	"github.com/likhonsheikh/tetheros-go/services"
)

type MiddleWareHandler interface {
	ValidateSession(http.HandlerFunc) http.HandlerFunc
}

type middlewareHandler struct {
	authService services.AuthService
	log         *zap.Logger
}

func NewMiddlewareHandler(auth services.AuthService, log *zap.Logger) MiddleWareHandler {
	return &middlewareHandler{authService: auth, log: log}
}

func (m *middlewareHandler) ValidateSession(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("authorization"), "Bearer ")
		if token == "" {
			errors.NewInvalidTokenError().Serialize(w)
			return
		}

		if !m.authService.ValidateToken(token) {
			errors.NewInvalidTokenError().Serialize(w)
			return
		}

		h.ServeHTTP(w, r)
	}
}

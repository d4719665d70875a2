package services

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lucsky/cuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/likhonsheikh/tetheros-go/config"
	"github.com/likhonsheikh/tetheros-go/errors"
	"github.com/likhonsheikh/tetheros-go/models"
	"github.com/likhonsheikh/tetheros-go/types/responses"
)

// AuthService gates the exchange screen behind the upstream access-key
// verifier. A 5xx or network failure from the verifier means "server
// offline"; any other rejection means the key is invalid.
type AuthService interface {
	Verify(ctx context.Context, accessKey string) (*models.Session, error)
	ValidateToken(token string) bool
}

func NewAuthService(cfg *config.Config, log *zap.Logger) AuthService {
	return &authService{
		service:  service{cfg: cfg, log: log},
		client:   newHTTPClient(),
		sessions: map[string][]byte{},
	}
}

type authService struct {
	service
	client *http.Client

	mu       sync.RWMutex
	sessions map[string][]byte
}

func (a *authService) Verify(ctx context.Context, accessKey string) (*models.Session, error) {
	body, err := json.Marshal(map[string]string{"accessKey": accessKey})
	if err != nil {
		return nil, errors.NewFatalError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.AuthVerifyURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, errors.NewFatalError(err)
	}
	req.Header.Set("content-type", "application/json")

	res, err := a.client.Do(req)
	if err != nil {
		a.log.Warn("reaching access key verifier", zap.Error(err))
		return nil, errors.NewFailedDependencyError("CONNECTION_REFUSED: SERVER OFFLINE")
	}
	defer res.Body.Close()

	data := new(responses.VerifyAccessKeyResponse)
	// A missing or malformed body is not a rejection on its own.
	_ = json.NewDecoder(res.Body).Decode(data)

	if res.StatusCode >= 500 {
		return nil, errors.NewFailedDependencyError("CONNECTION_REFUSED: SERVER OFFLINE")
	}
	if res.StatusCode < 200 || res.StatusCode > 299 || (data.Success != nil && !*data.Success) {
		message := data.Message
		if message == "" {
			message = "INVALID ACCESS KEY"
		}
		return nil, errors.NewAuthenticationError(message)
	}

	return a.issueSession()
}

func (a *authService) issueSession() (*models.Session, error) {
	now := time.Now()
	sessionID := uuid.NewString()
	secret := "sess_" + cuid.Slug()

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.NewFatalError(err)
	}

	a.mu.Lock()
	a.sessions[sessionID] = hash
	a.mu.Unlock()

	return &models.Session{
		ID:        sessionID,
		Token:     sessionID + "." + secret,
		CreatedAt: &now,
	}, nil
}

func (a *authService) ValidateToken(token string) bool {
	sessionID, secret, ok := strings.Cut(token, ".")
	if !ok {
		return false
	}

	a.mu.RLock()
	hash, ok := a.sessions[sessionID]
	a.mu.RUnlock()
	if !ok {
		return false
	}

	return bcrypt.CompareHashAndPassword(hash, []byte(secret)) == nil
}

package requests

type VerifyAccessKeyRequest struct {
	AccessKey string `json:"accessKey" validate:"required"`
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/jellydator/validation"

	"github.com/sakif/formbot/internal/apperror"
)

// Request payloads live here, each with a Validate method. The validation
// library collects per-field rules; decodeAndValidate runs them right
// after decoding, so handlers only ever see well-formed input.

// SignupRequest is the body for POST /signup.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r SignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("username is required")),
		validation.Field(&r.Email, validation.Required.Error("email is required")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

// LoginRequest is the body for POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required.Error("email is required")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

// CreateFolderRequest is the body for POST /api/folders.
type CreateFolderRequest struct {
	Name string `json:"name"`
}

func (r CreateFolderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("folder name is required")),
	)
}

// CreateFormRequest is the body for POST /api/forms.
type CreateFormRequest struct {
	Name     string `json:"name"`
	FolderID string `json:"folderId"`
}

func (r CreateFormRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("form name is required")),
		validation.Field(&r.FolderID, validation.Required.Error("folder ID is required")),
	)
}

// CreateGlobalFormRequest is the body for POST /api/globalForms.
type CreateGlobalFormRequest struct {
	Name string `json:"name"`
}

func (r CreateGlobalFormRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("form name is required")),
	)
}

// decodeAndValidate decodes the request body into object and, if the
// payload type declares rules, runs them. Both failure modes come back as
// apperror.ErrValidation, so the caller just forwards to writeError.
func decodeAndValidate(r *http.Request, object validation.Validatable) error {
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(object); err != nil {
		return apperror.ValidationFailed("body", "invalid JSON body")
	}

	if err := object.Validate(); err != nil {
		return apperror.ValidationFailed("body", err.Error())
	}

	return nil
}

package user

import (
	errors "github.com/frahmantamala/cashbook-management/internal"
	"github.com/frahmantamala/cashbook-management/internal/core/common/validation"
)

// RegisterDTO carries a registration request. All fields are mandatory and
// the password must be at least 4 characters.
type RegisterDTO struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	NationalID string `json:"national_id"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	Role       Role   `json:"role"`
}

func (dto RegisterDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("first_name", dto.FirstName).Required()
	v.Field("last_name", dto.LastName).Required()
	v.Field("national_id", dto.NationalID).Required()
	v.Field("username", dto.Username).Required()
	v.Field("password", dto.Password).Required().MinLength(4)
	v.Field("role", string(dto.Role)).Custom(func(interface{}) *errors.AppError {
		if !dto.Role.Valid() {
			return errors.NewValidationFieldError("role", "role must be master or standard", errors.ErrCodeValidationFailed)
		}
		return nil
	})
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

type CredentialsDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (dto CredentialsDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("username", dto.Username).Required()
	v.Field("password", dto.Password).Required()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

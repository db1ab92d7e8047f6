package request

import (
	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/usecase"
)

type CreateCustomerRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=100"`
	Phone    string `json:"phone" binding:"required,min=8,max=20"`
	Document string `json:"document" binding:"required,min=11,max=14"`
	Email    string `json:"email" binding:"omitempty,email"`
}

func (r CreateCustomerRequest) ToInput() usecase.CreateCustomerInput {
	return usecase.CreateCustomerInput{
		Name:     r.Name,
		Phone:    r.Phone,
		Document: r.Document,
		Email:    r.Email,
	}
}

// UpdateCustomerRequest is a partial update; absent fields are left untouched.
// The document cannot be changed.
type UpdateCustomerRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=3,max=100"`
	Phone  *string `json:"phone" binding:"omitempty,min=8,max=20"`
	Email  *string `json:"email" binding:"omitempty,email"`
	Active *bool   `json:"active"`
}

func (r UpdateCustomerRequest) ToPatch() entities.CustomerPatch {
	return entities.CustomerPatch{
		Name:   r.Name,
		Phone:  r.Phone,
		Email:  r.Email,
		Active: r.Active,
	}
}

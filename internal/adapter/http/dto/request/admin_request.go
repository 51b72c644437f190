package request

import (
	"strings"

	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/usecase"
)

type UserRequest struct {
	Name     string   `json:"name" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password"`
	Role     string   `json:"role" binding:"required"`
	Branches []string `json:"branches"`
}

func (r UserRequest) ToInput() usecase.UserInput {
	return usecase.UserInput{
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.TrimSpace(r.Email),
		Password: r.Password,
		Role:     entities.Role(strings.TrimSpace(r.Role)),
		Branches: r.Branches,
	}
}

type RoleRequest struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

func (r RoleRequest) ToDefinition() entities.RoleDefinition {
	perms := make([]entities.RequestStatus, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		perms = append(perms, entities.RequestStatus(strings.TrimSpace(p)))
	}
	return entities.RoleDefinition{Name: entities.Role(r.Name), Permissions: perms}
}

type BranchRequest struct {
	ID   string `json:"id"`
	Name string `json:"name" binding:"required"`
	City string `json:"city"`
}

func (r BranchRequest) ToBranch() entities.Branch {
	return entities.Branch{ID: strings.TrimSpace(r.ID), Name: r.Name, City: r.City}
}

package validator

import (
	"strings"

	"crewhub/core/controller"
	"crewhub/modules/member/dto"
)

type ValidationResult struct {
	Errors []controller.ValidationError `json:"errors"`
}

func (r *ValidationResult) HasError() bool {
	return len(r.Errors) > 0
}

func (r *ValidationResult) add(field, message string) {
	r.Errors = append(r.Errors, controller.NewValidationError(field, message))
}

func ValidateGroupRequest(req *dto.GroupRequest) *ValidationResult {
	result := &ValidationResult{}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		result.add("name", "name is required")
	}
	if len(name) > 100 {
		result.add("name", "name must be at most 100 characters")
	}
	if len(req.Description) > 2000 {
		result.add("description", "description must be at most 2000 characters")
	}

	return result
}

func ValidateJoinRequest(req *dto.JoinGroupRequest) *ValidationResult {
	result := &ValidationResult{}
	if strings.TrimSpace(req.InviteCode) == "" {
		result.add("invite_code", "invite code is required")
	}
	return result
}

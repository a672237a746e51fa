package response

import (
	"hvac_registry/internal/domain/entities"
	"hvac_registry/internal/domain/variant"
)

type ReferenceOptionResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
}

func FromReferenceOptions(items []entities.ReferenceOption) []ReferenceOptionResponse {
	out := make([]ReferenceOptionResponse, 0, len(items))
	for _, o := range items {
		out = append(out, ReferenceOptionResponse(o))
	}
	return out
}

type ProfileResponse struct {
	ModelFamily    string          `json:"modelo"`
	Profile        variant.Profile `json:"profile"`
	RequiredFields []string        `json:"required_fields"`
}

func FromProfile(family entities.ModelFamily, p variant.Profile) ProfileResponse {
	return ProfileResponse{
		ModelFamily:    string(family),
		Profile:        p,
		RequiredFields: p.RequiredFields(),
	}
}

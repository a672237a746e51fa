package request

import (
	"hvac_registry/internal/domain/entities"
	"hvac_registry/internal/domain/variant"

	"github.com/go-playground/validator/v10"
)

// RegisterValidations adds the binding tags used by the request payloads.
func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("model_family", isModelFamily); err != nil {
		return err
	}
	if err := v.RegisterValidation("answer", isAnswer); err != nil {
		return err
	}
	return nil
}

func isModelFamily(fl validator.FieldLevel) bool {
	_, err := variant.ParseFamily(fl.Field().String())
	return err == nil
}

// isAnswer accepts Sim, Não and N/A.
func isAnswer(fl validator.FieldLevel) bool {
	return entities.Answer(fl.Field().String()).Valid()
}

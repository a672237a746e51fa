package handlers

import (
	"errors"

	"hvac_registry/internal/adapter/http/dto/request"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterBindings installs the custom binding tags on gin's validator. It
// must run before the first request is bound.
func RegisterBindings() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	return request.RegisterValidations(v)
}

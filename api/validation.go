package api

import (
	"fmt"
	"time"

	"github.com/Domenick1991/dentaltrip/internal/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags to gin's validator. It
// must run before any handler binds a request.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("isodate", isoDate); err != nil {
		return fmt.Errorf("register isodate: %w", err)
	}
	return nil
}

func isoDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(domain.DateLayout, fl.Field().String())
	return err == nil
}

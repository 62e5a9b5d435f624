package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mateusmacedo/go-companies/pkg/application"
	"github.com/mateusmacedo/go-companies/pkg/domain"
)

type playgroundValidator[T any] struct {
	validate *validator.Validate
}

// NewCommandValidator cria um validador estrutural baseado nas tags
// `validate` do payload. Todas as violações são coletadas, não apenas a
// primeira.
func NewCommandValidator[T any]() application.CommandValidator[T] {
	return &playgroundValidator[T]{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (v *playgroundValidator[T]) Validate(ctx context.Context, payload T) []domain.Notification {
	err := v.validate.StructCtx(ctx, payload)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []domain.Notification{domain.NewNotification("Validation", err.Error())}
	}

	notifications := make([]domain.Notification, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		notifications = append(notifications, domain.NewNotification(
			fieldKey(fieldError),
			fmt.Sprintf("field %q failed on the %q rule", fieldError.Field(), fieldError.Tag()),
		))
	}
	return notifications
}

// fieldKey remove o nome do tipo raiz do namespace para chaves estáveis como
// "Address.City" em vez de "CreateCompanyData.Address.City".
func fieldKey(fieldError validator.FieldError) string {
	namespace := fieldError.Namespace()
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

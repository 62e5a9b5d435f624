package domain

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"

	pkgDomain "github.com/mateusmacedo/go-companies/pkg/domain"
)

// CompleteName é o nome completo do sócio; primeiro e último nome são
// obrigatórios.
type CompleteName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func NewCompleteName(firstName, lastName string) CompleteName {
	return CompleteName{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
	}
}

func (n CompleteName) Validate() []pkgDomain.Notification {
	var notifications []pkgDomain.Notification
	if n.FirstName == "" {
		notifications = append(notifications, pkgDomain.NewNotification("FirstName", "first name is required"))
	}
	if n.LastName == "" {
		notifications = append(notifications, pkgDomain.NewNotification("LastName", "last name is required"))
	}
	return notifications
}

func (n CompleteName) String() string {
	return strings.TrimSpace(n.FirstName + " " + n.LastName)
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email é armazenado normalizado em minúsculas.
type Email string

func NewEmail(raw string) Email {
	return Email(strings.ToLower(strings.TrimSpace(raw)))
}

func (e Email) String() string {
	return string(e)
}

func (e Email) Validate() []pkgDomain.Notification {
	if !emailPattern.MatchString(string(e)) {
		return []pkgDomain.Notification{pkgDomain.NewNotification("Email", "email format is invalid")}
	}
	return nil
}

// Partner é um agregado independente: uma pessoa que pode ser vinculada a
// empresas por identificador.
type Partner struct {
	ID    uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	Name  CompleteName `json:"name" gorm:"embedded"`
	Email Email        `json:"email" gorm:"uniqueIndex"`
}

// Create valida nome e email de uma vez; qualquer violação impede a criação.
func Create(id uuid.UUID, name CompleteName, email Email) pkgDomain.Result[*Partner] {
	var notifications []pkgDomain.Notification
	notifications = append(notifications, name.Validate()...)
	notifications = append(notifications, email.Validate()...)

	if len(notifications) > 0 {
		return pkgDomain.Failure[*Partner](notifications...)
	}

	return pkgDomain.Success(&Partner{ID: id, Name: name, Email: email})
}

// PartnerRepository abstrai a persistência do agregado. GetByID devolve
// (nil, nil) quando o sócio não existe.
type PartnerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Partner, error)
	AnyPartnerByID(ctx context.Context, id uuid.UUID) (bool, error)
	IsDuplicatedEmail(ctx context.Context, email Email) (bool, error)
	Add(ctx context.Context, partner *Partner) error
	Remove(ctx context.Context, partner *Partner) error
}

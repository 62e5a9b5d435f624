package domain

import (
	"fmt"

	"github.com/google/uuid"

	pkgDomain "github.com/mateusmacedo/go-companies/pkg/domain"
)

func PartnerNotFound(id uuid.UUID) pkgDomain.Notification {
	return pkgDomain.NewNotification("PartnerNotFound", fmt.Sprintf("partner %s was not found", id))
}

func EmailAlreadyExists(email Email) pkgDomain.Notification {
	return pkgDomain.NewNotification("EmailAlreadyExists", fmt.Sprintf("a partner with email %s already exists", email))
}

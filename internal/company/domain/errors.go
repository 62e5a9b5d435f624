package domain

import (
	"fmt"

	"github.com/google/uuid"

	pkgDomain "github.com/mateusmacedo/go-companies/pkg/domain"
)

// Catálogo de notificações de negócio do agregado Company.

func CompanyNotFound(id uuid.UUID) pkgDomain.Notification {
	return pkgDomain.NewNotification("CompanyNotFound", fmt.Sprintf("company %s was not found", id))
}

func CompanyCnpjAlreadyExists(cnpj Cnpj) pkgDomain.Notification {
	return pkgDomain.NewNotification("CompanyCnpjAlreadyExists", fmt.Sprintf("a company with cnpj %s already exists", cnpj))
}

func CompanyNameAlreadyExists(name string) pkgDomain.Notification {
	return pkgDomain.NewNotification("CompanyNameAlreadyExists", fmt.Sprintf("a company with name %q already exists", name))
}

func PartnerAlreadyLinkedWithCompany() pkgDomain.Notification {
	return pkgDomain.NewNotification("PartnerAlreadyLinkedWithCompany", "partner is already linked with this company")
}

func PartnerNotLinkedWithCompany() pkgDomain.Notification {
	return pkgDomain.NewNotification("PartnerNotLinkedWithCompany", "partner is not linked with this company")
}

func PartnerNotFound(id uuid.UUID) pkgDomain.Notification {
	return pkgDomain.NewNotification("PartnerNotFound", fmt.Sprintf("partner %s was not found", id))
}

func PhoneAlreadyRegistered() pkgDomain.Notification {
	return pkgDomain.NewNotification("PhoneAlreadyRegistered", "phone is already registered for this company")
}

func PhoneNotRegistered() pkgDomain.Notification {
	return pkgDomain.NewNotification("PhoneNotRegistered", "phone is not registered for this company")
}

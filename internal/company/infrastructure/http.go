package infrastructure

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mateusmacedo/go-companies/internal/company/application"
	"github.com/mateusmacedo/go-companies/internal/importer"
	pkgApp "github.com/mateusmacedo/go-companies/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-companies/pkg/domain"
)

type CompanyHTTPHandler struct {
	createBus        pkgApp.CommandBus[pkgDomain.Command[application.CreateCompanyData], application.CreateCompanyData, application.CompanyDetails]
	updateBus        pkgApp.CommandBus[pkgDomain.Command[application.UpdateCompanyData], application.UpdateCompanyData, application.CompanyDetails]
	removeBus        pkgApp.CommandBus[pkgDomain.Command[application.RemoveCompanyData], application.RemoveCompanyData, application.CompanyDetails]
	addPartnerBus    pkgApp.CommandBus[pkgDomain.Command[application.AddPartnerInCompanyData], application.AddPartnerInCompanyData, application.CompanyDetails]
	removePartnerBus pkgApp.CommandBus[pkgDomain.Command[application.RemovePartnerFromCompanyData], application.RemovePartnerFromCompanyData, application.CompanyDetails]
	queryBus         pkgApp.QueryBus[pkgDomain.Query[application.FindCompanyByCnpjData], application.FindCompanyByCnpjData, *application.CompanyDetails]
	broker           importer.Broker
}

func NewCompanyHTTPHandler(
	createBus pkgApp.CommandBus[pkgDomain.Command[application.CreateCompanyData], application.CreateCompanyData, application.CompanyDetails],
	updateBus pkgApp.CommandBus[pkgDomain.Command[application.UpdateCompanyData], application.UpdateCompanyData, application.CompanyDetails],
	removeBus pkgApp.CommandBus[pkgDomain.Command[application.RemoveCompanyData], application.RemoveCompanyData, application.CompanyDetails],
	addPartnerBus pkgApp.CommandBus[pkgDomain.Command[application.AddPartnerInCompanyData], application.AddPartnerInCompanyData, application.CompanyDetails],
	removePartnerBus pkgApp.CommandBus[pkgDomain.Command[application.RemovePartnerFromCompanyData], application.RemovePartnerFromCompanyData, application.CompanyDetails],
	queryBus pkgApp.QueryBus[pkgDomain.Query[application.FindCompanyByCnpjData], application.FindCompanyByCnpjData, *application.CompanyDetails],
	broker importer.Broker,
) *CompanyHTTPHandler {
	return &CompanyHTTPHandler{
		createBus:        createBus,
		updateBus:        updateBus,
		removeBus:        removeBus,
		addPartnerBus:    addPartnerBus,
		removePartnerBus: removePartnerBus,
		queryBus:         queryBus,
		broker:           broker,
	}
}

func (h *CompanyHTTPHandler) HandleCreateCompany(w http.ResponseWriter, r *http.Request) {
	var data application.CreateCompanyData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		handleError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := h.createBus.Dispatch(ctx, application.NewCreateCompanyCommand(data))
	if err != nil {
		handleError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeResult(w, result, http.StatusCreated)
}

func (h *CompanyHTTPHandler) HandleUpdateCompany(w http.ResponseWriter, r *http.Request) {
	companyID, err := uuid.Parse(chi.URLParam(r, "companyID"))
	if err != nil {
		handleError(w, "Invalid company id", http.StatusBadRequest)
		return
	}

	var data application.UpdateCompanyData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		handleError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	data.CompanyID = companyID

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := h.updateBus.Dispatch(ctx, application.NewUpdateCompanyCommand(data))
	if err != nil {
		handleError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeResult(w, result, http.StatusOK)
}

func (h *CompanyHTTPHandler) HandleRemoveCompany(w http.ResponseWriter, r *http.Request) {
	companyID, err := uuid.Parse(chi.URLParam(r, "companyID"))
	if err != nil {
		handleError(w, "Invalid company id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := h.removeBus.Dispatch(ctx, application.NewRemoveCompanyCommand(application.RemoveCompanyData{CompanyID: companyID}))
	if err != nil {
		handleError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if result.IsFailure() {
		writeNotifications(w, result.Notifications)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CompanyHTTPHandler) HandleAddPartner(w http.ResponseWriter, r *http.Request) {
	companyID, err := uuid.Parse(chi.URLParam(r, "companyID"))
	if err != nil {
		handleError(w, "Invalid company id", http.StatusBadRequest)
		return
	}

	var data application.AddPartnerInCompanyData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		handleError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	data.CompanyID = companyID

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := h.addPartnerBus.Dispatch(ctx, application.NewAddPartnerInCompanyCommand(data))
	if err != nil {
		handleError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeResult(w, result, http.StatusCreated)
}

func (h *CompanyHTTPHandler) HandleRemovePartner(w http.ResponseWriter, r *http.Request) {
	companyID, err := uuid.Parse(chi.URLParam(r, "companyID"))
	if err != nil {
		handleError(w, "Invalid company id", http.StatusBadRequest)
		return
	}
	partnerID, err := uuid.Parse(chi.URLParam(r, "partnerID"))
	if err != nil {
		handleError(w, "Invalid partner id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := h.removePartnerBus.Dispatch(ctx, application.NewRemovePartnerFromCompanyCommand(application.RemovePartnerFromCompanyData{
		CompanyID: companyID,
		PartnerID: partnerID,
	}))
	if err != nil {
		handleError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeResult(w, result, http.StatusOK)
}

func (h *CompanyHTTPHandler) HandleFindCompanyByCnpj(w http.ResponseWriter, r *http.Request) {
	cnpj := chi.URLParam(r, "cnpj")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	details, err := h.queryBus.Dispatch(ctx, application.NewFindCompanyByCnpjQuery(application.FindCompanyByCnpjData{Cnpj: cnpj}))
	if err != nil {
		handleError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if details == nil {
		handleError(w, "Company not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(details); err != nil {
		handleError(w, err.Error(), http.StatusInternalServerError)
	}
}

// HandleImportCompany aceita o comando e o publica na fila de importação. A
// resposta 202 confirma apenas o enfileiramento; o desfecho de negócio sai no
// log do worker.
func (h *CompanyHTTPHandler) HandleImportCompany(w http.ResponseWriter, r *http.Request) {
	var data application.CreateCompanyData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		handleError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.broker.Publish(ctx, data); err != nil {
		handleError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{"message": "Company import accepted", "cnpj": data.Cnpj}); err != nil {
		handleError(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *CompanyHTTPHandler) RegisterRoutes(router chi.Router) {
	router.Post("/companies", h.HandleCreateCompany)
	router.Post("/companies/import", h.HandleImportCompany)
	router.Get("/companies/{cnpj}", h.HandleFindCompanyByCnpj)
	router.Put("/companies/{companyID}", h.HandleUpdateCompany)
	router.Delete("/companies/{companyID}", h.HandleRemoveCompany)
	router.Post("/companies/{companyID}/partners", h.HandleAddPartner)
	router.Delete("/companies/{companyID}/partners/{partnerID}", h.HandleRemovePartner)
}

func writeResult(w http.ResponseWriter, result pkgDomain.Result[application.CompanyDetails], successStatus int) {
	if result.IsFailure() {
		writeNotifications(w, result.Notifications)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(successStatus)
	if err := json.NewEncoder(w).Encode(result.Data); err != nil {
		handleError(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeNotifications(w http.ResponseWriter, notifications []pkgDomain.Notification) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(notificationsStatus(notifications))
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"notifications": notifications})
}

// notificationsStatus traduz o catálogo de notificações em status HTTP:
// ausência vira 404, conflito de unicidade vira 409 e o restante é entrada
// inválida.
func notificationsStatus(notifications []pkgDomain.Notification) int {
	for _, notification := range notifications {
		if strings.HasSuffix(notification.Key, "NotFound") {
			return http.StatusNotFound
		}
	}
	for _, notification := range notifications {
		if strings.Contains(notification.Key, "AlreadyExists") || strings.Contains(notification.Key, "AlreadyLinked") || strings.Contains(notification.Key, "AlreadyRegistered") {
			return http.StatusConflict
		}
	}
	return http.StatusBadRequest
}

func handleError(w http.ResponseWriter, message string, statusCode int) {
	http.Error(w, message, statusCode)
}

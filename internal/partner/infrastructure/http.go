package infrastructure

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mateusmacedo/go-companies/internal/partner/application"
	pkgApp "github.com/mateusmacedo/go-companies/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-companies/pkg/domain"
)

type PartnerHTTPHandler struct {
	createBus pkgApp.CommandBus[pkgDomain.Command[application.CreatePartnerData], application.CreatePartnerData, application.PartnerDetails]
	removeBus pkgApp.CommandBus[pkgDomain.Command[application.RemovePartnerData], application.RemovePartnerData, application.PartnerDetails]
}

func NewPartnerHTTPHandler(
	createBus pkgApp.CommandBus[pkgDomain.Command[application.CreatePartnerData], application.CreatePartnerData, application.PartnerDetails],
	removeBus pkgApp.CommandBus[pkgDomain.Command[application.RemovePartnerData], application.RemovePartnerData, application.PartnerDetails],
) *PartnerHTTPHandler {
	return &PartnerHTTPHandler{
		createBus: createBus,
		removeBus: removeBus,
	}
}

func (h *PartnerHTTPHandler) HandleCreatePartner(w http.ResponseWriter, r *http.Request) {
	var data application.CreatePartnerData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		handleError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := h.createBus.Dispatch(ctx, application.NewCreatePartnerCommand(data))
	if err != nil {
		handleError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if result.IsFailure() {
		writeNotifications(w, result.Notifications)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(result.Data); err != nil {
		handleError(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *PartnerHTTPHandler) HandleRemovePartner(w http.ResponseWriter, r *http.Request) {
	partnerID, err := uuid.Parse(chi.URLParam(r, "partnerID"))
	if err != nil {
		handleError(w, "Invalid partner id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := h.removeBus.Dispatch(ctx, application.NewRemovePartnerCommand(application.RemovePartnerData{PartnerID: partnerID}))
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

func (h *PartnerHTTPHandler) RegisterRoutes(router chi.Router) {
	router.Post("/partners", h.HandleCreatePartner)
	router.Delete("/partners/{partnerID}", h.HandleRemovePartner)
}

func writeNotifications(w http.ResponseWriter, notifications []pkgDomain.Notification) {
	status := http.StatusBadRequest
	for _, notification := range notifications {
		if strings.HasSuffix(notification.Key, "NotFound") {
			status = http.StatusNotFound
			break
		}
		if strings.Contains(notification.Key, "AlreadyExists") {
			status = http.StatusConflict
			break
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"notifications": notifications})
}

func handleError(w http.ResponseWriter, message string, statusCode int) {
	http.Error(w, message, statusCode)
}

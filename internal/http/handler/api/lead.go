package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/advertisingnotdead/agency/internal/core/model"
	"github.com/advertisingnotdead/agency/internal/core/port"
	"github.com/advertisingnotdead/agency/internal/core/service"
	"github.com/advertisingnotdead/agency/internal/metrics"
	"github.com/pkg/errors"
)

type LeadHeader struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func newLeadHeader(lead model.Lead) LeadHeader {
	return LeadHeader{
		ID:        string(lead.ID()),
		Name:      lead.Name(),
		Email:     lead.Email(),
		Phone:     lead.Phone(),
		Message:   lead.Message(),
		Status:    string(lead.Status()),
		CreatedAt: lead.CreatedAt(),
	}
}

type ListLeadsResponse struct {
	Leads []LeadHeader `json:"leads"`
}

func (h *Handler) handleListLeads(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query()

	opts := port.QueryOptions{}
	if page := getQueryPage(query, -1); page >= 0 {
		opts.Page = &page
	}
	if limit := getQueryLimit(query, -1); limit > 0 {
		opts.Limit = &limit
	}

	leads, err := h.store.QueryLeads(ctx, opts)
	if err != nil {
		slog.ErrorContext(ctx, "could not query leads", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	res := ListLeadsResponse{
		Leads: make([]LeadHeader, 0, len(leads)),
	}

	for _, l := range leads {
		res.Leads = append(res.Leads, newLeadHeader(l))
	}

	encode(w, r, http.StatusOK, res)
}

type CreateLeadRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type CreateLeadResponse struct {
	Lead LeadHeader `json:"lead"`
}

type InvalidFieldsResponse struct {
	FieldErrors service.FieldErrors `json:"field_errors"`
}

func (h *Handler) handleCreateLead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	fieldErrors := service.Validate(service.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if !fieldErrors.Valid() {
		encode(w, r, http.StatusUnprocessableEntity, InvalidFieldsResponse{FieldErrors: fieldErrors})
		return
	}

	lead, err := h.store.CreateLead(ctx, port.LeadFields{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		slog.ErrorContext(ctx, "could not create lead", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	encode(w, r, http.StatusCreated, CreateLeadResponse{
		Lead: newLeadHeader(lead),
	})
}

type UpdateLeadStatusRequest struct {
	Status string `json:"status"`
}

type UpdateLeadStatusResponse struct {
	Lead LeadHeader `json:"lead"`
}

func (h *Handler) handleUpdateLeadStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	leadID := r.PathValue("leadID")

	var req UpdateLeadStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	status := model.LeadStatus(req.Status)
	if !status.IsValid() {
		http.Error(w, "invalid lead status", http.StatusBadRequest)
		return
	}

	lead, err := h.store.UpdateLeadStatus(ctx, model.LeadID(leadID), status)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		slog.ErrorContext(ctx, "could not update lead status", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	metrics.TotalLeadStatusChanges.Add(1)

	encode(w, r, http.StatusOK, UpdateLeadStatusResponse{
		Lead: newLeadHeader(lead),
	})
}

package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/advertisingnotdead/agency/internal/core/model"
	"github.com/advertisingnotdead/agency/internal/core/port"
	"github.com/advertisingnotdead/agency/internal/metrics"
	"github.com/pkg/errors"
)

type CaseStudyHeader struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newCaseStudyHeader(caseStudy model.CaseStudy) CaseStudyHeader {
	return CaseStudyHeader{
		ID:          string(caseStudy.ID()),
		Title:       caseStudy.Title(),
		Description: caseStudy.Description(),
		Category:    caseStudy.Category(),
		ImageURL:    caseStudy.ImageURL(),
		CreatedAt:   caseStudy.CreatedAt(),
		UpdatedAt:   caseStudy.UpdatedAt(),
	}
}

type ListCaseStudiesResponse struct {
	CaseStudies []CaseStudyHeader `json:"cases"`
}

func (h *Handler) handleListCaseStudies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query()

	opts := port.QueryOptions{}
	if page := getQueryPage(query, -1); page >= 0 {
		opts.Page = &page
	}
	if limit := getQueryLimit(query, -1); limit > 0 {
		opts.Limit = &limit
	}

	caseStudies, err := h.store.QueryCaseStudies(ctx, opts)
	if err != nil {
		slog.ErrorContext(ctx, "could not query case studies", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	res := ListCaseStudiesResponse{
		CaseStudies: make([]CaseStudyHeader, 0, len(caseStudies)),
	}

	for _, c := range caseStudies {
		res.CaseStudies = append(res.CaseStudies, newCaseStudyHeader(c))
	}

	encode(w, r, http.StatusOK, res)
}

type CreateCaseStudyRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
}

type CreateCaseStudyResponse struct {
	CaseStudy CaseStudyHeader `json:"case"`
}

func (h *Handler) handleCreateCaseStudy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateCaseStudyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		http.Error(w, "title and description are required", http.StatusBadRequest)
		return
	}

	caseStudy, err := h.store.CreateCaseStudy(ctx, port.CaseStudyFields{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		slog.ErrorContext(ctx, "could not create case study", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	metrics.TotalCaseStudyCreates.Add(1)

	encode(w, r, http.StatusCreated, CreateCaseStudyResponse{
		CaseStudy: newCaseStudyHeader(caseStudy),
	})
}

package dashboard

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mabrur-erp/mabrur-erp/internal/platform/httpx"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.overview)
	r.Get("/sales-trends", h.salesTrends)
	r.Delete("/cache", h.invalidate)
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.Overview(r.Context())
	if err != nil {
		h.logger.Error("dashboard overview", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, overview)
}

func (h *Handler) salesTrends(w http.ResponseWriter, r *http.Request) {
	filter, err := parseTrendFilter(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	trends, err := h.service.SalesTrends(r.Context(), filter)
	if err != nil {
		h.logger.Error("dashboard sales trends", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if trends == nil {
		trends = []SalesTrend{}
	}
	httpx.JSON(w, http.StatusOK, trends)
}

func parseTrendFilter(r *http.Request) (TrendFilter, error) {
	var filter TrendFilter
	q := r.URL.Query()
	if raw := q.Get("start_date"); raw != "" {
		ts, err := parseDate(raw)
		if err != nil {
			return TrendFilter{}, err
		}
		filter.StartDate = &ts
	}
	if raw := q.Get("end_date"); raw != "" {
		ts, err := parseDate(raw)
		if err != nil {
			return TrendFilter{}, err
		}
		filter.EndDate = &ts
	}
	return filter, nil
}

func parseDate(raw string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02", raw)
}

func (h *Handler) invalidate(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Invalidate(r.Context()); err != nil {
		h.logger.Error("dashboard cache invalidate", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package packages

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mabrur-erp/mabrur-erp/internal/platform/httpx"
)

type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/umrah", h.listUmrah)
	r.Get("/haji", h.listHaji)
	r.Get("/{id}", h.get)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	pkgs, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list packages", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, pkgs)
}

func (h *Handler) listUmrah(w http.ResponseWriter, r *http.Request) {
	h.listCategory(w, r, CategoryUmrah)
}

func (h *Handler) listHaji(w http.ResponseWriter, r *http.Request) {
	h.listCategory(w, r, CategoryHaji)
}

func (h *Handler) listCategory(w http.ResponseWriter, r *http.Request, category Category) {
	pkgs, err := h.service.ListByCategory(r.Context(), category)
	if err != nil {
		h.logger.Error("list packages", slog.String("category", string(category)), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, pkgs)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid package id")
		return
	}
	pkg, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, pkg)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var input CreatePackageInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "malformed request body")
		return
	}
	if err := h.validator.Struct(input); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	pkg, err := h.service.Create(r.Context(), input)
	if err != nil {
		h.logger.Error("create package", slog.String("name", input.PackageName), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, pkg)
}

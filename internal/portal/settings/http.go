// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/ignite/internal/platform/request"
	"github.com/taibuivan/ignite/internal/platform/respond"
	"github.com/taibuivan/ignite/internal/platform/validate"
)

// Handler implements the application-settings HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new settings [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the settings routes. Writes sit
// behind the supplied admin gate.
//
// # Endpoints
//   - GET  /               : All settings rows.
//   - GET  /{type}         : Settings for one application type, cache first.
//   - PUT  /{type}         : Replaces one settings row (admin).
//   - POST /{type}/toggle  : Flips the admission window (admin).
func (handler *Handler) Routes(requireAdmin func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{type}", handler.get)

	router.Group(func(admin chi.Router) {
		admin.Use(requireAdmin)
		admin.Put("/{type}", handler.update)
		admin.Post("/{type}/toggle", handler.toggle)
	})

	return router
}

// settingsRequest represents the JSON payload for update operations.
type settingsRequest struct {
	IsOpen          bool   `json:"is_open"`
	OpeningDate     string `json:"opening_date"`
	ClosingDate     string `json:"closing_date"`
	MaxApplications int    `json:"max_applications"`
	Description     string `json:"description"`
	Instructions    string `json:"instructions"`
}

// list handles GET / requests.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.service.ListSettings(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

// get handles GET /{type} requests.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	applicationType := ApplicationType(requestutil.Param(request, "type"))

	result, err := handler.service.GetSettings(request.Context(), applicationType)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

// update handles PUT /{type} requests.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input settingsRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	opening, err := time.Parse("2006-01-02", input.OpeningDate)
	if err != nil {
		respond.Error(writer, request, validate.RequiredError(FieldOpeningDate, "Must be a date in YYYY-MM-DD format"))
		return
	}

	closing, err := time.Parse("2006-01-02", input.ClosingDate)
	if err != nil {
		respond.Error(writer, request, validate.RequiredError(FieldClosingDate, "Must be a date in YYYY-MM-DD format"))
		return
	}

	settings := &ApplicationSettings{
		ApplicationType: ApplicationType(requestutil.Param(request, "type")),
		IsOpen:          input.IsOpen,
		OpeningDate:     opening,
		ClosingDate:     closing,
		MaxApplications: input.MaxApplications,
		Description:     input.Description,
		Instructions:    input.Instructions,
	}

	if err := handler.service.UpdateSettings(request.Context(), settings); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, settings)
}

// toggle handles POST /{type}/toggle requests.
func (handler *Handler) toggle(writer http.ResponseWriter, request *http.Request) {
	applicationType := ApplicationType(requestutil.Param(request, "type"))

	result, err := handler.service.ToggleOpen(request.Context(), applicationType)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

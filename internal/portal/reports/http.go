// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reports

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/ignite/internal/platform/respond"
)

// Handler implements the read-only reporting endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new reports [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the reporting routes.
//
// # Endpoints
//   - GET /summary            : Headline dashboard figures.
//   - GET /application-report : Every application on record.
//   - GET /unpaid-report      : Applications with pending payments.
//   - GET /confirmed-report   : Applications with confirmed admissions.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/summary", handler.summary)
	router.Get("/application-report", handler.applicationReport)
	router.Get("/unpaid-report", handler.unpaidReport)
	router.Get("/confirmed-report", handler.confirmedReport)

	return router
}

// summary handles GET /summary requests.
func (handler *Handler) summary(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.service.Summary(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

// applicationReport handles GET /application-report requests.
func (handler *Handler) applicationReport(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.service.ApplicationReport(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

// unpaidReport handles GET /unpaid-report requests.
func (handler *Handler) unpaidReport(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.service.UnpaidReport(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

// confirmedReport handles GET /confirmed-report requests.
func (handler *Handler) confirmedReport(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.service.ConfirmedReport(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

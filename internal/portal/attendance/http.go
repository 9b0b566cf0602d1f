// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package attendance

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/ignite/internal/platform/request"
	"github.com/taibuivan/ignite/internal/platform/respond"
	"github.com/taibuivan/ignite/pkg/pagination"
)

// Handler implements the attendance HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new attendance [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the attendance CRUD routes.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Get("/{id}", handler.get)
	router.Put("/{id}", handler.update)
	router.Delete("/{id}", handler.remove)

	return router
}

// attendanceRequest represents the JSON payload for create/update operations.
type attendanceRequest struct {
	StudentID  string  `json:"student_id"`
	Percentage float64 `json:"attendance_percentage"`
	Status     string  `json:"status"`
}

// list handles GET / requests with pagination and an optional student filter.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	studentID := request.URL.Query().Get("student_id")

	records, total, err := handler.service.ListRecords(request.Context(), studentID, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, records, pagination.NewMeta(params.Page, params.Limit, total))
}

// get handles GET /{id} requests.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.service.GetRecord(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

// create handles POST / requests.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input attendanceRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record := &Attendance{
		StudentID:  input.StudentID,
		Percentage: input.Percentage,
		Status:     Status(input.Status),
	}

	if err := handler.service.CreateRecord(request.Context(), record); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, record)
}

// update handles PUT /{id} requests.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input attendanceRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record := &Attendance{
		ID:         requestutil.Param(request, "id"),
		StudentID:  input.StudentID,
		Percentage: input.Percentage,
		Status:     Status(input.Status),
	}

	if err := handler.service.UpdateRecord(request.Context(), record); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

// remove handles DELETE /{id} requests.
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteRecord(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package student

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/ignite/internal/platform/request"
	"github.com/taibuivan/ignite/internal/platform/respond"
	"github.com/taibuivan/ignite/pkg/pagination"
)

// Handler implements the student HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new student [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the application CRUD routes.
//
// # Endpoints
//   - GET    /            : Paginated, filterable application list.
//   - POST   /            : Creates an application.
//   - GET    /by-program  : All applications for one program.
//   - GET    /{id}        : Retrieves one application.
//   - PUT    /{id}        : Updates one application.
//   - DELETE /{id}        : Removes one application.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Get("/by-program", handler.byProgram)
	router.Get("/{id}", handler.get)
	router.Put("/{id}", handler.update)
	router.Delete("/{id}", handler.remove)

	return router
}

// studentRequest represents the JSON payload for create/update operations.
type studentRequest struct {
	ApplicationNo   string  `json:"application_no"`
	Name            string  `json:"name"`
	ProgramID       string  `json:"program_id"`
	Community       string  `json:"community"`
	PaymentStatus   string  `json:"payment_status"`
	AdmissionStatus string  `json:"admission_status"`
	CounsellorID    *string `json:"counsellor_id"`
}

// list handles GET / requests with pagination and filters.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	query := request.URL.Query()

	filter := Filter{
		ProgramID:       query.Get("program_id"),
		PaymentStatus:   PaymentStatus(query.Get("payment_status")),
		AdmissionStatus: AdmissionStatus(query.Get("admission_status")),
	}

	students, total, err := handler.service.ListStudents(request.Context(), filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, students, pagination.NewMeta(params.Page, params.Limit, total))
}

// byProgram handles GET /by-program?program_id= requests.
func (handler *Handler) byProgram(writer http.ResponseWriter, request *http.Request) {
	students, err := handler.service.ListByProgram(request.Context(), request.URL.Query().Get("program_id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, students)
}

// get handles GET /{id} requests.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	student, err := handler.service.GetStudent(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, student)
}

// create handles POST / requests.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input studentRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	student := &Student{
		ApplicationNo:   input.ApplicationNo,
		Name:            input.Name,
		ProgramID:       input.ProgramID,
		Community:       Community(input.Community),
		PaymentStatus:   PaymentStatus(input.PaymentStatus),
		AdmissionStatus: AdmissionStatus(input.AdmissionStatus),
		CounsellorID:    input.CounsellorID,
	}

	if err := handler.service.CreateStudent(request.Context(), student); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, student)
}

// update handles PUT /{id} requests.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input studentRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	student := &Student{
		ID:              requestutil.Param(request, "id"),
		Name:            input.Name,
		Community:       Community(input.Community),
		PaymentStatus:   PaymentStatus(input.PaymentStatus),
		AdmissionStatus: AdmissionStatus(input.AdmissionStatus),
		CounsellorID:    input.CounsellorID,
	}

	if err := handler.service.UpdateStudent(request.Context(), student); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, student)
}

// remove handles DELETE /{id} requests.
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteStudent(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

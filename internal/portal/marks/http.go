// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package marks

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/ignite/internal/platform/request"
	"github.com/taibuivan/ignite/internal/platform/respond"
	"github.com/taibuivan/ignite/pkg/pagination"
)

// Handler implements the assignment-mark HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new marks [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the mark CRUD routes.
//
// # Endpoints
//   - GET    /            : Paginated mark list.
//   - POST   /            : Creates a mark record.
//   - GET    /by-program  : All marks for one program.
//   - GET    /{id}        : Retrieves one mark record.
//   - PUT    /{id}        : Updates one mark record.
//   - DELETE /{id}        : Removes one mark record.
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

// markRequest represents the JSON payload for create/update operations.
type markRequest struct {
	RegNo         string  `json:"reg_no"`
	StudentID     string  `json:"student_id"`
	ProgramID     string  `json:"program_id"`
	PaperCode     string  `json:"p_code"`
	InternalMarks float64 `json:"internal_marks"`
	Status        string  `json:"status"`
}

// list handles GET / requests with pagination.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	programID := request.URL.Query().Get("program_id")

	result, total, err := handler.service.ListMarks(request.Context(), programID, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, result, pagination.NewMeta(params.Page, params.Limit, total))
}

// byProgram handles GET /by-program?program_id= requests.
func (handler *Handler) byProgram(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.service.ListByProgram(request.Context(), request.URL.Query().Get("program_id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

// get handles GET /{id} requests.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	mark, err := handler.service.GetMark(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, mark)
}

// create handles POST / requests.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input markRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	mark := &AssignmentMark{
		RegNo:         input.RegNo,
		StudentID:     input.StudentID,
		ProgramID:     input.ProgramID,
		PaperCode:     input.PaperCode,
		InternalMarks: input.InternalMarks,
		Status:        Status(input.Status),
	}

	if err := handler.service.CreateMark(request.Context(), mark); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, mark)
}

// update handles PUT /{id} requests.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input markRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	mark := &AssignmentMark{
		ID:            requestutil.Param(request, "id"),
		RegNo:         input.RegNo,
		StudentID:     input.StudentID,
		ProgramID:     input.ProgramID,
		PaperCode:     input.PaperCode,
		InternalMarks: input.InternalMarks,
		Status:        Status(input.Status),
	}

	if err := handler.service.UpdateMark(request.Context(), mark); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, mark)
}

// remove handles DELETE /{id} requests.
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteMark(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

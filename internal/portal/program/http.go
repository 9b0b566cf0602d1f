// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package program

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/ignite/internal/platform/request"
	"github.com/taibuivan/ignite/internal/platform/respond"
)

// Handler implements the program HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new program [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the program CRUD routes.
//
// # Endpoints
//   - GET    /        : Lists the full catalogue.
//   - POST   /        : Creates a program.
//   - GET    /{id}    : Retrieves one program.
//   - PUT    /{id}    : Updates one program.
//   - DELETE /{id}    : Removes one program.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Get("/{id}", handler.get)
	router.Put("/{id}", handler.update)
	router.Delete("/{id}", handler.remove)

	return router
}

// programRequest represents the JSON payload for create/update operations.
type programRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// list handles GET / requests.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	programs, err := handler.service.ListPrograms(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, programs)
}

// get handles GET /{id} requests.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	program, err := handler.service.GetProgram(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, program)
}

// create handles POST / requests.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input programRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	program := &Program{
		Code:        input.Code,
		Name:        input.Name,
		Description: input.Description,
	}

	if err := handler.service.CreateProgram(request.Context(), program); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, program)
}

// update handles PUT /{id} requests.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input programRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	program := &Program{
		ID:          requestutil.Param(request, "id"),
		Name:        input.Name,
		Description: input.Description,
	}

	if err := handler.service.UpdateProgram(request.Context(), program); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, program)
}

// remove handles DELETE /{id} requests.
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteProgram(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

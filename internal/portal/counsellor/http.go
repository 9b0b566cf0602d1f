// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package counsellor

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/ignite/internal/platform/request"
	"github.com/taibuivan/ignite/internal/platform/respond"
	"github.com/taibuivan/ignite/internal/platform/validate"
	"github.com/taibuivan/ignite/pkg/pagination"
)

// Handler implements the counsellor HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new counsellor [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the counsellor CRUD routes.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Get("/{id}", handler.get)
	router.Put("/{id}", handler.update)
	router.Delete("/{id}", handler.remove)

	return router
}

// counsellorRequest represents the JSON payload for create/update operations.
type counsellorRequest struct {
	Name                 string `json:"counsellor_name"`
	FatherName           string `json:"father_name"`
	MotherName           string `json:"mother_name"`
	DateOfBirth          string `json:"date_of_birth"` // YYYY-MM-DD
	Gender               string `json:"gender"`
	AadhaarCard          string `json:"aadhaar_card"`
	Qualification        string `json:"qualification"`
	HighestQualification string `json:"highest_qualification"`
	ProgramID            string `json:"programme_assigned"`
	MobileNumber         string `json:"mobile_number"`
	AlternateNumber      string `json:"alternate_number"`
	Email                string `json:"email_id"`
	CurrentDesignation   string `json:"current_designation"`
	WorkingExperience    string `json:"working_experience"`
	AddressLine1         string `json:"address_line1"`
	AddressLine2         string `json:"address_line2"`
	AddressLine3         string `json:"address_line3"`
	Pincode              string `json:"pincode"`
	District             string `json:"district"`
	State                string `json:"state"`
}

// toEntity converts the payload into a [Counsellor], parsing the birth date.
func (input *counsellorRequest) toEntity() (*Counsellor, error) {
	dateOfBirth, err := time.Parse("2006-01-02", input.DateOfBirth)
	if err != nil {
		return nil, validate.RequiredError("date_of_birth", "Must be a valid YYYY-MM-DD date")
	}

	return &Counsellor{
		Name:                 input.Name,
		FatherName:           input.FatherName,
		MotherName:           input.MotherName,
		DateOfBirth:          dateOfBirth,
		Gender:               Gender(input.Gender),
		AadhaarCard:          input.AadhaarCard,
		Qualification:        input.Qualification,
		HighestQualification: input.HighestQualification,
		ProgramID:            input.ProgramID,
		MobileNumber:         input.MobileNumber,
		AlternateNumber:      input.AlternateNumber,
		Email:                input.Email,
		CurrentDesignation:   input.CurrentDesignation,
		WorkingExperience:    input.WorkingExperience,
		AddressLine1:         input.AddressLine1,
		AddressLine2:         input.AddressLine2,
		AddressLine3:         input.AddressLine3,
		Pincode:              input.Pincode,
		District:             input.District,
		State:                input.State,
	}, nil
}

// list handles GET / requests with pagination.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	counsellors, total, err := handler.service.ListCounsellors(request.Context(), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, counsellors, pagination.NewMeta(params.Page, params.Limit, total))
}

// get handles GET /{id} requests.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	counsellor, err := handler.service.GetCounsellor(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, counsellor)
}

// create handles POST / requests.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input counsellorRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	counsellor, err := input.toEntity()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateCounsellor(request.Context(), counsellor); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, counsellor)
}

// update handles PUT /{id} requests.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input counsellorRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	counsellor, err := input.toEntity()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	counsellor.ID = requestutil.Param(request, "id")

	if err := handler.service.UpdateCounsellor(request.Context(), counsellor); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, counsellor)
}

// remove handles DELETE /{id} requests.
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteCounsellor(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/anthropometry"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/api/validation"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/domain"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/service"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/pkg/problem"
)

type ProfileHandler struct {
	service service.ProfileService
}

func NewProfileHandler(service service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Create handles POST /v1/profiles
// @Summary Register a profile
// @Description Register a patient, doctor, nutritionist or admin profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body domain.CreateProfileRequest true "Profile creation request"
// @Success 201 {object} domain.ProfileResponse
// @Failure 400 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /profiles [post]
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	profile, err := h.service.Create(r.Context(), &req)
	if err != nil {
		problem.InternalError("Failed to create profile").Write(w)
		return
	}

	writeJSON(w, http.StatusCreated, profile.ToResponse(anthropometry.Age(profile.BirthDate)))
}

// GetByID handles GET /v1/profiles/{profileId}
// @Summary Get profile by ID
// @Description Get a profile with its age derived from the birth date
// @Tags profiles
// @Produce json
// @Param profileId path string true "Profile ID" format(uuid)
// @Success 200 {object} domain.ProfileResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /profiles/{profileId} [get]
func (h *ProfileHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		problem.BadRequest("Invalid profile ID format").Write(w)
		return
	}

	profile, err := h.service.GetByID(r.Context(), profileID)
	if err != nil {
		if writeDomainError(w, r, err, "Profile not found") {
			return
		}
		problem.InternalError("Failed to get profile").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, profile.ToResponse(anthropometry.Age(profile.BirthDate)))
}

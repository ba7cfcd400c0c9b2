package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/domain"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/pkg/problem"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeDomainError maps the domain sentinel errors shared by every resource.
// It reports false when err is not one of them.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error, notFound string) bool {
	var p *problem.Problem
	switch {
	case errors.Is(err, domain.ErrNotFound):
		p = problem.NotFound(notFound)
	case errors.Is(err, domain.ErrInvalidRole):
		p = problem.UnprocessableEntity("invalid-role", "Invalid Role", err.Error())
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidTimeLabel),
		errors.Is(err, domain.ErrUnknownGender):
		p = problem.BadRequest(err.Error())
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrStatusTransition):
		p = problem.Conflict(err.Error())
	default:
		return false
	}
	p.WithInstance(r.URL.Path).Write(w)
	return true
}

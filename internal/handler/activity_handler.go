package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/gov-comms/activity-tracker/internal/domain"
	"github.com/gov-comms/activity-tracker/internal/schema"
	"github.com/gov-comms/activity-tracker/internal/service"
	apperrors "github.com/gov-comms/activity-tracker/pkg/errors"
	"github.com/gov-comms/activity-tracker/pkg/logger"
)

// ActivityHandler handles the /activities HTTP surface
type ActivityHandler struct {
	activities service.ActivitiesService
	validate   *validator.Validate
	log        *logger.Logger
}

func NewActivityHandler(activities service.ActivitiesService, log *logger.Logger) *ActivityHandler {
	return &ActivityHandler{
		activities: activities,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		log:        log,
	}
}

// RegisterRoutes mounts the activity endpoints on the router
func (h *ActivityHandler) RegisterRoutes(r chi.Router) {
	r.Route("/activities", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.FindAll)
		r.Get("/{id}", h.FindOne)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// Create handles POST /activities
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, apperrors.NewValidationError("invalid request body", nil))
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.writeError(w, apperrors.NewValidationError("activity failed creation schema", map[string]interface{}{
			"fields": schema.FieldPaths(err),
		}))
		return
	}

	resp, err := h.activities.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeData(w, http.StatusCreated, resp)
}

// FindAll handles GET /activities
func (h *ActivityHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		h.writeError(w, apperrors.NewValidationError(err.Error(), nil))
		return
	}

	responses, err := h.activities.FindAll(r.Context(), filter)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if responses == nil {
		responses = []*domain.ActivityResponse{}
	}
	h.writeData(w, http.StatusOK, responses)
}

// FindOne handles GET /activities/{id}
func (h *ActivityHandler) FindOne(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp, err := h.activities.FindOne(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeData(w, http.StatusOK, resp)
}

// Update handles PATCH /activities/{id}
func (h *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req domain.UpdateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, apperrors.NewValidationError("invalid request body", nil))
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.writeError(w, apperrors.NewValidationError("activity failed update schema", map[string]interface{}{
			"fields": schema.FieldPaths(err),
		}))
		return
	}

	resp, err := h.activities.Update(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeData(w, http.StatusOK, resp)
}

// Delete handles DELETE /activities/{id}. The default is a hard
// delete; mode=soft deactivates the row instead.
func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if r.URL.Query().Get("mode") == "soft" {
		err = h.activities.SoftDelete(r.Context(), id)
	} else {
		err = h.activities.Delete(r.Context(), id)
	}
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Activity #%d deleted successfully", id),
	})
}

func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.NewValidationError(fmt.Sprintf("invalid activity id %q", raw), nil)
	}
	return id, nil
}

// parseFilter converts query parameters into the list filter
func parseFilter(q url.Values) (*domain.ActivityFilter, error) {
	filter := &domain.ActivityFilter{}

	if v := q.Get("title"); v != "" {
		filter.Title = &v
	}
	for name, dest := range map[string]**int64{
		"activityStatusId":  &filter.ActivityStatusID,
		"contactMinistryId": &filter.ContactMinistryID,
		"cityId":            &filter.CityID,
	} {
		if v := q.Get(name); v != "" {
			parsed, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid %s %q", name, v)
			}
			*dest = &parsed
		}
	}
	for name, dest := range map[string]**bool{
		"isActive":       &filter.IsActive,
		"isConfidential": &filter.IsConfidential,
		"isIssue":        &filter.IsIssue,
	} {
		if v := q.Get(name); v != "" {
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("invalid %s %q", name, v)
			}
			*dest = &parsed
		}
	}
	for name, dest := range map[string]**string{
		"startDateFrom": &filter.StartDateFrom,
		"startDateTo":   &filter.StartDateTo,
		"endDateFrom":   &filter.EndDateFrom,
		"endDateTo":     &filter.EndDateTo,
	} {
		if v := q.Get(name); v != "" {
			if !validDate(v) {
				return nil, fmt.Errorf("invalid %s %q, want YYYY-MM-DD", name, v)
			}
			*dest = &v
		}
	}

	return filter, nil
}

func validDate(v string) bool {
	if len(v) != 10 {
		return false
	}
	_, errMonth := strconv.Atoi(v[5:7])
	_, errDay := strconv.Atoi(v[8:10])
	_, errYear := strconv.Atoi(v[0:4])
	return v[4] == '-' && v[7] == '-' && errYear == nil && errMonth == nil && errDay == nil
}

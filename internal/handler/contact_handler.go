package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/grabbix/backend/internal/metrics"
	"github.com/grabbix/backend/internal/model"
	"github.com/grabbix/backend/internal/service"
	"github.com/grabbix/backend/internal/validation"
)

// ContactHandler handles contact form submission and listing.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitResponse is the JSON response for a successful submission.
type submitResponse struct {
	Success bool           `json:"success"`
	Contact *model.Contact `json:"contact"`
}

// errorResponse is the JSON response for failed requests.
type errorResponse struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

// Submit handles POST /api/contact and its alias POST /api/contacts.
// name (≥2 chars) and a valid email are required; all other fields are
// optional. The 200 response commits as soon as the contact is stored;
// sink delivery runs afterwards and never changes the outcome.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var form validation.ContactForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		metrics.ContactsRejectedTotal.Inc()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(errorResponse{
			Success: false,
			Message: "Invalid form data",
			Errors:  []validation.FieldError{{Field: "body", Message: "Request body must be valid JSON."}},
		})
		return
	}

	if errs := validation.Validate(&form); len(errs) > 0 {
		metrics.ContactsRejectedTotal.Inc()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(errorResponse{
			Success: false,
			Message: "Invalid form data",
			Errors:  errs,
		})
		return
	}

	contact := &model.Contact{
		Name:         form.Name,
		Email:        form.Email,
		Phone:        form.Phone,
		Company:      form.Company,
		Location:     form.Location,
		SpaceType:    form.SpaceType,
		CustomerSize: form.CustomerSize,
		Message:      form.Message,
	}

	if err := h.contactService.Submit(r.Context(), contact); err != nil {
		slog.Error("contact store failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(errorResponse{
			Success: false,
			Message: "Failed to submit contact form",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(submitResponse{Success: true, Contact: contact})
}

// List handles GET /api/contacts: the full stored collection as a JSON
// array in insertion order. Intended for internal use, not the public form.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contactService.List(r.Context())
	if err != nil {
		slog.Error("contact list failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(errorResponse{
			Success: false,
			Message: "Failed to fetch contacts",
		})
		return
	}

	// Return [] not null for empty collections.
	if contacts == nil {
		contacts = []*model.Contact{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(contacts)
}

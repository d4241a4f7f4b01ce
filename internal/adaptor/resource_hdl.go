package adaptor

import (
	"encoding/json"
	"net/http"

	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ResourceHandler serves the uniform CRUD endpoints for one entity.
// All entity-specific behavior lives in the service; this layer only
// decodes, dispatches and writes the envelope.
type ResourceHandler[Req any, Patch any, Resp any] struct {
	service usecase.ResourceService[Req, Patch, Resp]
	name    string
	log     *zap.Logger
}

func NewResourceHandler[Req any, Patch any, Resp any](service usecase.ResourceService[Req, Patch, Resp], name string, log *zap.Logger) *ResourceHandler[Req, Patch, Resp] {
	return &ResourceHandler[Req, Patch, Resp]{
		service: service,
		name:    name,
		log:     log.With(zap.String("handler", name)),
	}
}

func (h *ResourceHandler[Req, Patch, Resp]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list "+h.name)
		return
	}

	utils.ResponseSuccess(w, "success", items)
}

func (h *ResourceHandler[Req, Patch, Resp]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resourceID(w, r)
	if !ok {
		return
	}

	item, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.log, err, "get "+h.name)
		return
	}

	utils.ResponseSuccess(w, "success", item)
}

func (h *ResourceHandler[Req, Patch, Resp]) Create(w http.ResponseWriter, r *http.Request) {
	var req Req
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	item, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create "+h.name)
		return
	}

	utils.ResponseCreated(w, "success", item)
}

func (h *ResourceHandler[Req, Patch, Resp]) Replace(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resourceID(w, r)
	if !ok {
		return
	}

	var req Req
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	item, err := h.service.Replace(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "replace "+h.name)
		return
	}

	utils.ResponseSuccess(w, "success", item)
}

func (h *ResourceHandler[Req, Patch, Resp]) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resourceID(w, r)
	if !ok {
		return
	}

	var patch Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	item, err := h.service.Patch(r.Context(), id, &patch)
	if err != nil {
		respondServiceError(w, h.log, err, "patch "+h.name)
		return
	}

	utils.ResponseSuccess(w, "success", item)
}

func (h *ResourceHandler[Req, Patch, Resp]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resourceID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.log, err, "delete "+h.name)
		return
	}

	utils.ResponseSuccess(w, "Deleted successfully", nil)
}

// resourceID parses the {id} path segment. A malformed id responds 404
// rather than 400 so the route behaves as if no such resource exists.
func (h *ResourceHandler[Req, Patch, Resp]) resourceID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseNotFound(w, h.name+" not found")
		return uuid.Nil, false
	}
	return id, true
}

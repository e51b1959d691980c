package httpapi

import (
	"encoding/json"
	"fmt"
	"github.com/QuangTung97/booth-ads/pkg/otellib"
	"github.com/QuangTung97/booth-ads/pkg/util"
	"github.com/QuangTung97/booth-ads/service/gallery"
	"github.com/QuangTung97/booth-ads/service/management"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
	"io"
	"net/http"
)

const maxBodyBytes = 1 << 20

// Handler serves the gallery and management JSON api
type Handler struct {
	gallery    gallery.IService
	management management.IService
}

// NewHandler ...
func NewHandler(galleryService gallery.IService, managementService management.IService) *Handler {
	return &Handler{
		gallery:    galleryService,
		management: managementService,
	}
}

// Register adds the api routes to mux
func (h *Handler) Register(mux *runtime.ServeMux) error {
	routes := []struct {
		method  string
		pattern string
		handler runtime.HandlerFunc
	}{
		{http.MethodGet, "/api/v1/venues/{venue_id}/ads", h.listVenueAds},
		{http.MethodGet, "/api/v1/venues/{venue_id}/gallery/ads", h.galleryAds},
		{http.MethodGet, "/api/v1/venues/{venue_id}/manage/ads", h.manageAds},
		{http.MethodPost, "/api/v1/ads", h.createAd},
		{http.MethodPut, "/api/v1/ads/{id}", h.updateAd},
		{http.MethodDelete, "/api/v1/ads/{id}", h.deleteAd},
	}

	for _, route := range routes {
		if err := mux.HandlePath(route.method, route.pattern, recoverHandler(route.handler)); err != nil {
			return fmt.Errorf("register %s %s: %w", route.method, route.pattern, err)
		}
	}
	return nil
}

func recoverHandler(next runtime.HandlerFunc) runtime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, params map[string]string) {
		defer func() {
			if p := recover(); p != nil {
				otellib.Extract(r.Context()).Error("Panic in http handler",
					zap.Any("panic", p), zap.String("path", r.URL.Path),
				)
				writeError(w, r, fmt.Errorf("panic: %v", p))
			}
		}()
		next(w, r, params)
	}
}

func writeJSON(w http.ResponseWriter, status int, value interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := errorStatus(err)
	if status == http.StatusInternalServerError {
		otellib.Extract(r.Context()).Error("Request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	writeJSON(w, status, resp)
}

func decodeBody(r *http.Request, dest interface{}) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("%w: %v", errBadRequestBody, err)
	}
	return nil
}

func (h *Handler) listVenueAds(w http.ResponseWriter, r *http.Request, params map[string]string) {
	ads, err := h.gallery.GetVenueAds(r.Context(), params["venue_id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, VenueAdsResponse{Ads: ads})
}

// galleryAds never fails, a venue without reachable ads gets an empty selection
func (h *Handler) galleryAds(w http.ResponseWriter, r *http.Request, params map[string]string) {
	output := h.gallery.GetActiveAds(r.Context(), params["venue_id"])

	data, err := json.Marshal(newGalleryAdsResponse(output))
	if err != nil {
		writeError(w, r, err)
		return
	}

	etag := util.ETag(data)
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")

	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) manageAds(w http.ResponseWriter, r *http.Request, params map[string]string) {
	views, err := h.management.List(r.Context(), params["venue_id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ManageAdsResponse{Ads: views})
}

func (h *Handler) createAd(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req management.AdRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	ad, err := h.management.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, ad)
}

func (h *Handler) updateAd(w http.ResponseWriter, r *http.Request, params map[string]string) {
	var req management.AdRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	ad, err := h.management.Update(r.Context(), params["id"], req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ad)
}

func (h *Handler) deleteAd(w http.ResponseWriter, r *http.Request, params map[string]string) {
	if err := h.management.Delete(r.Context(), params["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

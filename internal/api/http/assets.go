package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/examforge/examforge-backend/internal/rbac"
	"github.com/examforge/examforge-backend/internal/storage"
	"github.com/examforge/examforge-backend/internal/tenant"
)

// MountAssets wires item media routes onto the given subrouter. Blobs
// are tenant-scoped; the store rejects keys that escape the tenant dir.
// Reads are open to any authenticated caller; writes need assets:write.
func MountAssets(r chi.Router, bs storage.BlobStore) {
	// POST /assets/items/{itemID}  (multipart file=, name= optional)
	r.With(rbac.Require("assets:write")).Post("/items/{itemID}", func(w http.ResponseWriter, r *http.Request) {
		itemID := chi.URLParam(r, "itemID")
		f, hdr, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file required", http.StatusBadRequest)
			return
		}
		defer f.Close()

		name := r.FormValue("name")
		if name == "" {
			name = hdr.Filename
		}
		if name == "" {
			name = "upload.bin"
		}
		key := "items/" + itemID + "/" + name
		if _, err := bs.Put(tenant.FromContext(r.Context()), key, f); err != nil {
			status := http.StatusInternalServerError
			if err == storage.ErrBadKey {
				status = http.StatusBadRequest
			}
			http.Error(w, "store error: "+err.Error(), status)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"key": key})
	})

	// GET /assets/*  -> the blob at whatever follows /assets/
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
		rc, err := bs.Get(tenant.FromContext(r.Context()), key)
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer rc.Close()
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = io.Copy(w, rc)
	})

	// DELETE /assets/*
	r.With(rbac.Require("assets:write")).Delete("/*", func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
		if err := bs.Delete(tenant.FromContext(r.Context()), key); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/examforge/examforge-backend/internal/bank"
	"github.com/examforge/examforge-backend/internal/rbac"
	"github.com/examforge/examforge-backend/internal/tenant"
)

var checker = rbac.NewChecker(nil)

// POST /items
func CreateItemHandler(store bank.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var it bank.Item
		if !decodeJSON(w, r, &it) {
			return
		}
		it.ID = "" // server-assigned
		it.TenantID = tenant.FromContext(r.Context())
		if err := store.Put(r.Context(), &it); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, it)
	}
}

// PUT /items/{itemID}
func UpdateItemHandler(store bank.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tid := tenant.FromContext(r.Context())
		id := chi.URLParam(r, "itemID")
		if _, err := store.GetAuthoring(r.Context(), tid, id); err != nil {
			storeError(w, err)
			return
		}
		var it bank.Item
		if !decodeJSON(w, r, &it) {
			return
		}
		it.ID = id
		it.TenantID = tid
		if err := store.Put(r.Context(), &it); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, it)
	}
}

// GET /items/{itemID}
// Authors get the full item with its answer key; everyone else gets the
// sanitized rendering view.
func GetItemHandler(store bank.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tid := tenant.FromContext(r.Context())
		id := chi.URLParam(r, "itemID")
		role := rbac.RoleFromContext(r.Context())

		var it bank.Item
		var err error
		if checker.Has(role, "item:edit") {
			it, err = store.GetAuthoring(r.Context(), tid, id)
		} else {
			it, err = store.Get(r.Context(), tid, id)
		}
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, it)
	}
}

// GET /items?q=&kind=&limit=&offset=
func ListItemsHandler(store bank.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		opts := bank.ListOpts{
			Q:    q.Get("q"),
			Kind: q.Get("kind"),
		}
		opts.Limit, _ = strconv.Atoi(q.Get("limit"))
		opts.Offset, _ = strconv.Atoi(q.Get("offset"))
		out, err := store.List(r.Context(), tenant.FromContext(r.Context()), opts)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// DELETE /items/{itemID}
func DeleteItemHandler(store bank.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tid := tenant.FromContext(r.Context())
		if err := store.Delete(r.Context(), tid, chi.URLParam(r, "itemID")); err != nil {
			storeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

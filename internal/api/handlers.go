package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/bartekus/planscan/internal/roadmap"
	"github.com/bartekus/planscan/internal/tasks"
)

// root resolves the ?root= parameter against the server's root. Relative
// values are joined to it; anything outside it is refused.
func (s *Server) root(w http.ResponseWriter, r *http.Request) (string, bool) {
	if s.defaultRoot == "" {
		jsonError(w, "no project root configured", http.StatusBadRequest)
		return "", false
	}
	base := filepath.Clean(s.defaultRoot)

	root := r.URL.Query().Get("root")
	if root == "" {
		return base, true
	}
	if !filepath.IsAbs(root) {
		root = filepath.Join(base, root)
	}
	root = filepath.Clean(root)

	rel, err := filepath.Rel(base, root)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		jsonError(w, "root must be inside "+base, http.StatusForbidden)
		return "", false
	}
	return root, true
}

func (s *Server) handleDocumentation(w http.ResponseWriter, r *http.Request) {
	root, ok := s.root(w, r)
	if !ok {
		return
	}

	doc, err := s.loader.Load(r.Context(), root)
	if err != nil {
		s.loadFailed(w, root, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDocuments(w http.ResponseWriter, r *http.Request) {
	root, ok := s.root(w, r)
	if !ok {
		return
	}

	infos, err := s.loader.Discover(r.Context(), root)
	if err != nil {
		s.loadFailed(w, root, err)
		return
	}
	if infos == nil {
		infos = []roadmap.DocFileInfo{}
	}
	writeJSON(w, http.StatusOK, infos)
}

func (s *Server) handleTasks(w http.ResponseWriter, r *http.Request) {
	root, ok := s.root(w, r)
	if !ok {
		return
	}
	projectID := r.URL.Query().Get("project")
	if projectID == "" {
		projectID = "project"
	}

	doc, err := s.loader.Load(r.Context(), root)
	if err != nil {
		s.loadFailed(w, root, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks.FromDocumentation(doc, projectID))
}

func (s *Server) loadFailed(w http.ResponseWriter, root string, err error) {
	s.log.Error("loading documentation failed", "root", root, "error", err)

	var readErr *roadmap.ReadError
	if errors.As(err, &readErr) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": err.Error(),
			"path":  readErr.Path,
		})
		return
	}
	jsonError(w, err.Error(), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}

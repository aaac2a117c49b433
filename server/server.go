// Package server exposes the checker, printer and AST dump over HTTP.
//
//	POST /v1/check   body: document   -> {"name", "valid", "issues"}
//	POST /v1/format  body: document   -> canonical text, or 422 with issues
//	POST /v1/ast     body: document   -> AST tree as JSON, or 422 with issues
//	GET  /healthz                     -> "ok"
//
// The document name is taken from the "name" query parameter.
package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/gqlfront/internal"
	tt "github.com/gnoswap-labs/gqlfront/internal/types"
	"github.com/gnoswap-labs/gqlfront/language/ast"
	"github.com/gnoswap-labs/gqlfront/language/printer"
	"github.com/gnoswap-labs/gqlfront/language/source"
)

// MaxBodySize caps the size of a request document.
const MaxBodySize = 1 << 20

type Server struct {
	engine *internal.Engine
	logger *zap.Logger
	router *mux.Router
}

// checkResponse is the body of /v1/check and of every 422 reply.
type checkResponse struct {
	Name   string     `json:"name"`
	Valid  bool       `json:"valid"`
	Issues []tt.Issue `json:"issues"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func New(engine *internal.Engine, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		engine: engine,
		logger: logger,
		router: mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	v1 := s.router.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/check", s.handleCheck).Methods(http.MethodPost)
	v1.HandleFunc("/format", s.handleFormat).Methods(http.MethodPost)
	v1.HandleFunc("/ast", s.handleAST).Methods(http.MethodPost)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	src, ok := s.readSource(w, r)
	if !ok {
		return
	}

	issues, err := s.engine.RunSource(src.Name, []byte(src.Body))
	if err != nil {
		s.logger.Error("Error checking document", zap.String("name", src.Name), zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if issues == nil {
		issues = []tt.Issue{}
	}
	s.writeJSON(w, http.StatusOK, checkResponse{
		Name:   src.Name,
		Valid:  len(issues) == 0,
		Issues: issues,
	})
}

func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	src, ok := s.readSource(w, r)
	if !ok {
		return
	}

	doc, ok := s.parse(w, src)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/graphql; charset=utf-8")
	_, _ = io.WriteString(w, printer.Print(doc))
}

func (s *Server) handleAST(w http.ResponseWriter, r *http.Request) {
	src, ok := s.readSource(w, r)
	if !ok {
		return
	}

	doc, ok := s.parse(w, src)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, printer.Tree(doc))
}

func (s *Server) readSource(w http.ResponseWriter, r *http.Request) (*source.Source, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		status := http.StatusBadRequest
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		s.writeJSON(w, status, errorResponse{Error: fmt.Sprintf("error reading body: %v", err)})
		return nil, false
	}
	return source.New(string(body), r.URL.Query().Get("name")), true
}

// parse replies with 422 and the syntax issues when src does not parse.
// A successful check leaves the document in the engine's cache, so the
// Parse that follows does not scan the text again.
func (s *Server) parse(w http.ResponseWriter, src *source.Source) (*ast.Document, bool) {
	issues, err := s.engine.RunSource(src.Name, []byte(src.Body))
	if err != nil {
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return nil, false
	}
	if len(issues) > 0 {
		s.writeJSON(w, http.StatusUnprocessableEntity, checkResponse{
			Name:   src.Name,
			Issues: issues,
		})
		return nil, false
	}

	doc, err := s.engine.Parse(src)
	if err != nil {
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return nil, false
	}
	return doc, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("Error writing response", zap.Error(err))
	}
}

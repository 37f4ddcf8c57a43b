package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/lgbarn/boardstate-go/internal/chess"
	"github.com/lgbarn/boardstate-go/internal/config"
	"github.com/lgbarn/boardstate-go/internal/errors"
)

// maxBodyBytes bounds request bodies; a record is well under this.
const maxBodyBytes = 1 << 16

// Server routes HTTP requests to a BoardService.
type Server struct {
	router  *mux.Router
	service *BoardService
	handler http.Handler
}

// NewServer builds the router. Requests are logged to logWriter in Apache
// common log format; CORS headers are added when origins are configured.
func NewServer(service *BoardService, cfg *config.ServerConfig, logWriter io.Writer) *Server {
	s := &Server{
		router:  mux.NewRouter(),
		service: service,
	}

	s.router.HandleFunc("/healthz", s.healthHandler).Methods(http.MethodGet)
	s.router.HandleFunc("/stats", s.statsHandler).Methods(http.MethodGet)
	s.router.HandleFunc("/boards", s.createHandler).Methods(http.MethodPost)
	s.router.HandleFunc("/boards/{id}", s.getHandler).Methods(http.MethodGet)
	s.router.HandleFunc("/boards/{id}", s.deleteHandler).Methods(http.MethodDelete)
	s.router.HandleFunc("/boards/{id}/moves", s.moveHandler).Methods(http.MethodPost)
	s.router.HandleFunc("/boards/{id}/moves/{square}", s.movesHandler).Methods(http.MethodGet)
	s.router.HandleFunc("/boards/{id}/check", s.checkHandler).Methods(http.MethodGet)
	s.router.NotFoundHandler = http.HandlerFunc(notFoundHandler)

	var h http.Handler = s.router
	if len(cfg.AllowedOrigins) > 0 {
		h = handlers.CORS(
			handlers.AllowedOrigins(cfg.AllowedOrigins),
			handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete}),
			handlers.AllowedHeaders([]string{"Content-Type"}),
		)(h)
	}
	s.handler = handlers.LoggingHandler(logWriter, h)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.service.Stats()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) createHandler(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if !decodeBody(w, r, &req) {
		return
	}
	id, board, repeated, err := s.service.Create(req.FEN)
	if err != nil {
		writeError(w, err)
		return
	}
	view := newBoardView(id, board)
	view.Repeated = repeated
	w.Header().Set("Location", "/boards/"+id)
	writeJSON(w, http.StatusCreated, view)
}

func (s *Server) getHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	board, err := s.service.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newBoardView(id, board))
}

func (s *Server) deleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Delete(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) movesHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	moves, err := s.service.Moves(vars["id"], vars["square"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MovesView{Square: vars["square"], Moves: moveStrings(moves)})
}

func (s *Server) moveHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req moveRequest
	if !decodeBody(w, r, &req) {
		return
	}
	board, repeated, err := s.service.Apply(id, req.Move)
	if err != nil {
		writeError(w, err)
		return
	}
	view := newBoardView(id, board)
	view.Repeated = repeated
	writeJSON(w, http.StatusOK, view)
}

// checkHandler answers ?move=e2f3&colour=white. The colour defaults to the
// side to move.
func (s *Server) checkHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	query := r.URL.Query()
	moveText := query.Get("move")

	var colour chess.Colour
	if name := query.Get("colour"); name != "" {
		c, ok := chess.ParseColour(name)
		if !ok {
			writeJSON(w, http.StatusBadRequest, ErrorView{Error: "unknown colour " + name})
			return
		}
		colour = c
	} else {
		board, err := s.service.Get(id)
		if err != nil {
			writeError(w, err)
			return
		}
		colour = board.ToMove()
	}

	check, err := s.service.Check(id, moveText, colour)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CheckView{Move: moveText, Colour: colour.String(), Check: check})
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, ErrorView{Error: "not found"})
}

// decodeBody reads a JSON body into v. An empty body leaves v unchanged.
// On failure it writes a 400 response and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil && err != io.EOF {
		writeJSON(w, http.StatusBadRequest, ErrorView{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

// statusFor maps an error onto an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errors.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrInvalidFEN),
		errors.Is(err, errors.ErrIllegalMove),
		errors.Is(err, errors.ErrOutOfBounds):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrInvariantViolation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed", "error", err)
	}
	writeJSON(w, status, ErrorView{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("encoding response", "error", err)
	}
}

package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/matryer/way"
	"github.com/sirupsen/logrus"

	"svw.info/lyne/internal/board"
	"svw.info/lyne/internal/domain"
	"svw.info/lyne/internal/report"
	"svw.info/lyne/internal/usecase"
)

type Handler struct {
	UC  *usecase.Service
	Log logrus.FieldLogger
}

func New(uc *usecase.Service, log logrus.FieldLogger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{UC: uc, Log: log}
}

func (h *Handler) Register(r *way.Router) {
	r.HandleFunc("POST", "/api/solve", h.handleSolve)
	r.HandleFunc("GET", "/api/solve/live", h.handleSolveLive)
	r.HandleFunc("POST", "/api/validate", h.handleValidate)
	r.HandleFunc("POST", "/api/generate", h.handleGenerate)
	r.HandleFunc("POST", "/api/hint", h.handleHint)
	r.HandleFunc("POST", "/api/puzzles", h.handleSave)
	r.HandleFunc("GET", "/api/puzzles", h.handleList)
	r.HandleFunc("GET", "/api/puzzles/:id", h.handleLoad)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ---- Solve ----

type solveReq struct {
	Rows []string `json:"rows"`
}

type solveResp struct {
	Solvable   bool             `json:"solvable"`
	Solution   *domain.Solution `json:"solution,omitempty"`
	Trace      string           `json:"trace,omitempty"`
	DurationMs int64            `json:"durationMs"`
	Nodes      int              `json:"nodes"`
	Error      string           `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	g, err := board.Parse(req.Rows)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, solveResp{Error: err.Error()})
		return
	}
	sol, st, err := h.UC.Solve(r.Context(), g)
	resp := solveResp{DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes}
	if err != nil {
		resp.Error = err.Error()
		writeJSON(w, http.StatusOK, resp)
		return
	}
	resp.Solvable = true
	resp.Solution = sol
	resp.Trace = report.Trace(sol)
	writeJSON(w, http.StatusOK, resp)
}

// ---- Live solve over websocket ----

type liveMsg struct {
	Type       string           `json:"type"` // progress | result
	Nodes      int              `json:"nodes,omitempty"`
	Solvable   bool             `json:"solvable,omitempty"`
	Solution   *domain.Solution `json:"solution,omitempty"`
	Trace      string           `json:"trace,omitempty"`
	DurationMs int64            `json:"durationMs,omitempty"`
	Error      string           `json:"error,omitempty"`
}

func (h *Handler) handleSolveLive(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	var req solveReq
	if err := conn.ReadJSON(&req); err != nil {
		_ = conn.WriteJSON(liveMsg{Type: "result", Error: "invalid request: " + err.Error()})
		return
	}
	g, err := board.Parse(req.Rows)
	if err != nil {
		_ = conn.WriteJSON(liveMsg{Type: "result", Error: err.Error()})
		return
	}
	// The sequential engine invokes the callback inline, so writes to the
	// connection never race each other.
	sol, st, err := h.UC.SolveLive(r.Context(), g, func(nodes int) {
		_ = conn.WriteJSON(liveMsg{Type: "progress", Nodes: nodes})
	})
	out := liveMsg{Type: "result", Nodes: st.Nodes, DurationMs: st.Duration.Milliseconds()}
	if err != nil {
		out.Error = err.Error()
	} else {
		out.Solvable = true
		out.Solution = sol
		out.Trace = report.Trace(sol)
	}
	_ = conn.WriteJSON(out)
}

// ---- Validate ----

type validateReq struct {
	Rows     []string         `json:"rows"`
	Solution *domain.Solution `json:"solution,omitempty"`
}

type validateResp struct {
	OK        bool           `json:"ok"`
	Conflicts []domain.Coord `json:"conflicts,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// handleValidate checks board structure, and, when a solution is supplied,
// its coverage of the board.
func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	g, err := board.Parse(req.Rows)
	if err != nil {
		writeJSON(w, http.StatusOK, validateResp{OK: false, Error: err.Error()})
		return
	}
	if req.Solution == nil {
		writeJSON(w, http.StatusOK, validateResp{OK: true})
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), g, req.Solution)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, validateResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Generate ----

type generateReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type generateResp struct {
	Puzzle     *domain.Puzzle `json:"puzzle,omitempty"`
	Seed       int64          `json:"seed,omitempty"`
	DurationMs int64          `json:"durationMs,omitempty"`
	Nodes      int            `json:"nodes,omitempty"`
	Error      string         `json:"error,omitempty"`
}

func parseDifficulty(s string) domain.Difficulty {
	switch s {
	case "easy":
		return domain.Easy
	case "hard":
		return domain.Hard
	case "expert":
		return domain.Expert
	default:
		return domain.Medium
	}
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, generateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p, st, err := h.UC.Generate(r.Context(), seed, parseDifficulty(req.Difficulty))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, generateResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, generateResp{
		Puzzle:     p,
		Seed:       seed,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Hint ----

type hintReq struct {
	Rows  []string `json:"rows"`
	Scope string   `json:"scope,omitempty"` // step | path
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func parseScope(s string) domain.HintScope {
	if s == "path" {
		return domain.ScopePath
	}
	return domain.ScopeStep
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	g, err := board.Parse(req.Rows)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, hintResp{Error: err.Error()})
		return
	}
	hh, found, err := h.UC.Hint(r.Context(), g, parseScope(req.Scope))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, hintResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, hintResp{Found: found, Hint: hh})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var p domain.Puzzle
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	// Reject boards that would not parse back.
	if _, err := board.Parse(p.Rows); err != nil {
		writeJSON(w, http.StatusBadRequest, saveResp{Error: err.Error()})
		return
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		writeJSON(w, http.StatusInternalServerError, saveResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, saveResp{ID: p.ID})
}

type loadResp struct {
	Puzzle *domain.Puzzle `json:"puzzle,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	id := way.Param(r.Context(), "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, loadResp{Error: "missing id"})
		return
	}
	p, err := h.UC.Load(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, loadResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ps, err := h.UC.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, listResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, listResp{Puzzles: ps})
}

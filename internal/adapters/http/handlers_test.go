package httpadapter

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/way"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/lyne/internal/domain"
	"svw.info/lyne/internal/generator"
	"svw.info/lyne/internal/hint"
	"svw.info/lyne/internal/infrastructure/storage"
	"svw.info/lyne/internal/solver"
	"svw.info/lyne/internal/usecase"
	"svw.info/lyne/internal/validator"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	s := solver.NewBacktrackingSolver()
	s.Log = log
	uc := usecase.NewService(
		s,
		generator.NewWalkGenerator(s),
		validator.New(),
		hint.NewNextStep(s),
		storage.NewFS(t.TempDir()),
	)
	router := way.NewRouter()
	New(uc, log).Register(router)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any, out any) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp
}

func TestSolveEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var out solveResp
	resp := postJSON(t, srv.URL+"/api/solve", solveReq{Rows: []string{"RrR"}}, &out)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, out.Solvable)
	require.NotNil(t, out.Solution)
	assert.Len(t, out.Solution.Paths, 1)
	assert.Contains(t, out.Trace, "red:")
}

func TestSolveEndpointMalformedBoard(t *testing.T) {
	srv := newTestServer(t)

	var out solveResp
	resp := postJSON(t, srv.URL+"/api/solve", solveReq{Rows: []string{"Rx"}}, &out)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, out.Error)
}

func TestSolveEndpointUnsolvable(t *testing.T) {
	srv := newTestServer(t)

	var out solveResp
	resp := postJSON(t, srv.URL+"/api/solve", solveReq{Rows: []string{"R.R"}}, &out)
	// An unsolvable board is a valid verdict, not a client error.
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, out.Solvable)
	assert.NotEmpty(t, out.Error)
}

func TestValidateEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var out validateResp
	postJSON(t, srv.URL+"/api/validate", validateReq{Rows: []string{"RrR"}}, &out)
	assert.True(t, out.OK)

	bad := &domain.Solution{Paths: []domain.Path{
		{Color: domain.Red, Cells: []domain.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 2}}},
	}}
	postJSON(t, srv.URL+"/api/validate", validateReq{Rows: []string{"RrR"}, Solution: bad}, &out)
	assert.False(t, out.OK)
	assert.NotEmpty(t, out.Conflicts)
}

func TestGenerateEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var out generateResp
	resp := postJSON(t, srv.URL+"/api/generate", generateReq{Difficulty: "easy", Seed: 42}, &out)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, out.Puzzle)
	assert.Equal(t, int64(42), out.Seed)
	assert.NotEmpty(t, out.Puzzle.Rows)
}

func TestHintEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var out hintResp
	postJSON(t, srv.URL+"/api/hint", hintReq{Rows: []string{"RrR"}, Scope: "step"}, &out)
	assert.True(t, out.Found)
	assert.Contains(t, out.Hint.Message, "Start red")
}

func TestPuzzleLifecycle(t *testing.T) {
	srv := newTestServer(t)

	var saved saveResp
	resp := postJSON(t, srv.URL+"/api/puzzles", domain.Puzzle{
		Rows: []string{"RrR"},
		Name: "lifecycle",
	}, &saved)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, saved.ID)

	var listed listResp
	getJSON(t, srv.URL+"/api/puzzles", &listed)
	require.Len(t, listed.Puzzles, 1)
	assert.Equal(t, saved.ID, listed.Puzzles[0].ID)
	assert.Equal(t, "lifecycle", listed.Puzzles[0].Name)

	var loaded loadResp
	getJSON(t, srv.URL+"/api/puzzles/"+saved.ID, &loaded)
	require.NotNil(t, loaded.Puzzle)
	assert.Equal(t, []string{"RrR"}, loaded.Puzzle.Rows)
}

func TestSaveRejectsMalformedBoard(t *testing.T) {
	srv := newTestServer(t)

	var saved saveResp
	resp := postJSON(t, srv.URL+"/api/puzzles", domain.Puzzle{Rows: []string{"Rx"}}, &saved)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, saved.Error)
}

func TestLoadMissingPuzzle(t *testing.T) {
	srv := newTestServer(t)

	var loaded loadResp
	resp := getJSON(t, srv.URL+"/api/puzzles/does-not-exist", &loaded)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, loaded.Error)
}

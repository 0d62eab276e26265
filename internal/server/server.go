// Package server exposes the visualization pipeline over HTTP. It
// serves a small form-based UI and renders the requested state tree
// inline, mirroring what the CLI writes to disk.
package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/recviz/pkg/errors"
	"github.com/matzehuels/recviz/pkg/pipeline"
)

// Server handles HTTP requests by running the visualization pipeline.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// New creates a server backed by the given runner. A nil logger falls
// back to the default logger.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, logger: logger}
}

// Handler returns the HTTP handler with all routes registered.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Post("/knapsack", s.handleKnapsack)
	r.Post("/targetsum", s.handleTargetSum)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}

// handleKnapsack renders a knapsack state tree from form parameters
// and writes the HTML artifact inline.
func (s *Server) handleKnapsack(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	capacity, err := errors.ParseInt(r.FormValue("capacity"))
	if err != nil {
		http.Error(w, "capacity must be an integer", http.StatusBadRequest)
		return
	}

	mode := r.FormValue("mode")
	if mode == "" {
		mode = pipeline.ModeDFS
	}

	title := "0/1 Knapsack State Tree"
	if mode == pipeline.ModeDP {
		title = "0/1 Knapsack DP Table"
	}

	opts := pipeline.Options{
		Problem:  pipeline.ProblemKnapsack,
		Mode:     mode,
		Weights:  r.FormValue("weights"),
		Values:   r.FormValue("values"),
		Capacity: capacity,
		Formats:  []string{pipeline.FormatHTML},
		Title:    title,
		Logger:   s.logger,
	}

	s.execute(w, r, opts)
}

// handleTargetSum renders a target sum DFS tree from form parameters.
func (s *Server) handleTargetSum(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	target, err := errors.ParseInt(r.FormValue("target"))
	if err != nil {
		http.Error(w, "target must be an integer", http.StatusBadRequest)
		return
	}

	opts := pipeline.Options{
		Problem: pipeline.ProblemTargetSum,
		Nums:    r.FormValue("nums"),
		Target:  target,
		Formats: []string{pipeline.FormatHTML},
		Title:   "Find Target Sum Ways - DFS Tree",
		Logger:  s.logger,
	}

	s.execute(w, r, opts)
}

// execute runs the pipeline and writes the HTML artifact, translating
// input and validation failures into 400 responses with the user-facing
// message.
func (s *Server) execute(w http.ResponseWriter, r *http.Request, opts pipeline.Options) {
	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		code := errors.GetCode(err)
		status := http.StatusInternalServerError
		switch code {
		case errors.ErrCodeInvalidInput, errors.ErrCodeValidation,
			errors.ErrCodeInvalidMode, errors.ErrCodeInvalidFormat,
			errors.ErrCodeInvalidProblem:
			status = http.StatusBadRequest
		}
		s.logger.Error("pipeline failed", "code", code, "err", err)
		http.Error(w, errors.UserMessage(err), status)
		return
	}

	s.logger.Info("rendered tree",
		"problem", opts.Problem,
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(result.Artifacts[pipeline.FormatHTML])
}

const indexHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>recviz</title>
  <style>
    body { font-family: sans-serif; max-width: 640px; margin: 2rem auto; }
    fieldset { margin-bottom: 1.5rem; }
    label { display: inline-block; min-width: 8rem; margin: 0.25rem 0; }
  </style>
</head>
<body>
  <h1>recviz</h1>
  <p>Enumerate and visualize recursion state trees.</p>

  <form method="post" action="/knapsack">
    <fieldset>
      <legend>0/1 Knapsack</legend>
      <label>Weights</label><input name="weights" value="1,2,3"><br>
      <label>Values</label><input name="values" value="6,10,12"><br>
      <label>Capacity</label><input name="capacity" value="5"><br>
      <label>Mode</label>
      <select name="mode">
        <option value="dfs">Recursion tree (DFS)</option>
        <option value="dp">DP table</option>
      </select><br>
      <button type="submit">Visualize</button>
    </fieldset>
  </form>

  <form method="post" action="/targetsum">
    <fieldset>
      <legend>Target Sum Ways</legend>
      <label>Numbers</label><input name="nums" value="1,1,1,1,1"><br>
      <label>Target</label><input name="target" value="3"><br>
      <button type="submit">Visualize</button>
    </fieldset>
  </form>
</body>
</html>
`

// Package docs generalizes the teacher's bare net/http docs server into a
// render-on-request collaborator: given a registered model id and one of
// its named formulas, it evaluates the formula and serves the induced
// LTS's DOT text with the chosen policy highlighted.
package docs

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"alphactl/core"
	"alphactl/display"
	"alphactl/models"
)

// Server is the doc-server hookup collaborator.
type Server struct {
	Addr string
	Log  *logrus.Entry
}

// NewServer builds a Server listening on addr.
func NewServer(addr string) *Server {
	return &Server{Addr: addr, Log: core.NewRunLogger()}
}

// Handler returns the server's routes, for tests or embedding behind
// another mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.healthz)
	mux.HandleFunc("/models", s.listModels)
	mux.HandleFunc("/render", s.render)
	return mux
}

// ListenAndServe blocks serving s.Handler() on s.Addr.
func (s *Server) ListenAndServe() error {
	s.Log.WithField("addr", s.Addr).Info("docs server starting")
	return http.ListenAndServe(s.Addr, s.Handler())
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) listModels(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(models.Registry)
}

// render serves the DOT text of lts(sat(Σ, φ)) for ?model=<id>&formula=<name>,
// where formula names one of the model's registered FormulaSpecs.
func (s *Server) render(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("model")
	formulaName := r.URL.Query().Get("formula")

	spec, ok := models.Lookup(atoiOrZero(id))
	if !ok {
		http.Error(w, "unknown model", http.StatusNotFound)
		return
	}

	var chosen *models.FormulaSpec
	for i := range spec.Formulas {
		if spec.Formulas[i].Name == formulaName {
			chosen = &spec.Formulas[i]
			break
		}
	}
	if chosen == nil {
		http.Error(w, "unknown formula", http.StatusNotFound)
		return
	}

	lts := spec.Build()
	policy, err := core.SatWithLogger(lts, chosen.Formula, s.Log)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "text/vnd.graphviz")
	fmt.Fprint(w, display.DOT(core.Induced(lts, policy), policy))
}

func atoiOrZero(s string) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	return n
}

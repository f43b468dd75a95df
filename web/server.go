package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/AmitVSingh/process-signals-dashboard/dataset"
	"github.com/AmitVSingh/process-signals-dashboard/render"
	"github.com/AmitVSingh/process-signals-dashboard/stats/summary"
)

// Server hosts the process signals dashboard.
type Server struct {
	cfg      Config
	store    *sessionStore
	mux      *http.ServeMux
	indexTpl *template.Template
}

// NewServer builds the dashboard server from the given config.
func NewServer(cfg Config) (*Server, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	tpl, err := template.New("index").Parse(indexHTML)
	if err != nil {
		return nil, fmt.Errorf("web: parse template: %w", err)
	}

	s := &Server{
		cfg:      cfg,
		store:    newSessionStore(cfg.SessionTTL),
		mux:      http.NewServeMux(),
		indexTpl: tpl,
	}

	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/api/upload", s.handleUpload)
	s.mux.HandleFunc("/api/signals", s.handleSignals)
	s.mux.HandleFunc("/api/scatter3d", s.handleScatter3D)
	s.mux.HandleFunc("/plot/grid.png", s.handleGridPNG)
	s.mux.HandleFunc("/plot/polygon.png", s.handlePolygonPNG)

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Close releases server resources.
func (s *Server) Close() {
	s.store.Close()
}

// ListenAndServe runs the server on the configured address.
func (s *Server) ListenAndServe() error {
	return http.ListenAndServe(s.cfg.Addr, s)
}

type indexData struct {
	Filename      string
	Signals       []string
	DefaultWindow int
	DefaultBins   int
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := indexData{
		DefaultWindow: s.cfg.DefaultWindow,
		DefaultBins:   s.cfg.DefaultBins,
	}
	if ds, filename, ok := s.session(r); ok {
		data.Filename = filename
		data.Signals = ds.Names()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.indexTpl.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleUpload accepts a multipart XLSX or CSV file and binds the parsed
// dataset to the caller's session, replacing any previous upload.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "upload requires a 'file' form field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	ds, err := loadUpload(file, header.Filename, r.FormValue("sheet"))
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, errUnsupportedFormat) {
			status = http.StatusUnsupportedMediaType
		}
		http.Error(w, err.Error(), status)
		return
	}

	id, err := s.sessionID(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.store.Put(id, ds, header.Filename)

	writeJSON(w, map[string]any{
		"filename": header.Filename,
		"signals":  ds.Names(),
	})
}

// signalInfo is one entry of the /api/signals listing.
type signalInfo struct {
	Name        string  `json:"name"`
	TimeColumn  string  `json:"timeColumn,omitempty"`
	ValueColumn string  `json:"valueColumn"`
	Length      int     `json:"length"`
	Mean        float64 `json:"mean"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	StdDev      float64 `json:"stdDev"`
}

func (s *Server) handleSignals(w http.ResponseWriter, r *http.Request) {
	ds, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	infos := make([]signalInfo, 0, len(ds.Signals()))
	for _, ref := range ds.Signals() {
		series, err := ds.Get(ref.Name)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		st := summary.Calculate(series.Value)
		infos = append(infos, signalInfo{
			Name:        ref.Name,
			TimeColumn:  ref.TimeColumn,
			ValueColumn: ref.ValueColumn,
			Length:      st.Length,
			Mean:        st.Mean,
			Min:         st.Min,
			Max:         st.Max,
			StdDev:      st.StdDev,
		})
	}

	writeJSON(w, infos)
}

func (s *Server) handleScatter3D(w http.ResponseWriter, r *http.Request) {
	ds, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	rows, ok := s.buildRows(w, r, ds)
	if !ok {
		return
	}

	opts := []render.ScatterOption{
		render.WithMaxPoints(s.intParam(r, "maxPoints", s.cfg.MaxScatterPoints)),
	}
	if r.URL.Query().Get("smoothed") == "1" {
		opts = append(opts, render.WithSmoothed())
	}
	if name := r.URL.Query().Get("color"); name != "" {
		mode, err := render.ColorModeByName(name)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		opts = append(opts, render.WithColorMode(mode))
	}

	sc, err := render.BuildScatter3D(rows, opts...)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	writeJSON(w, sc)
}

func (s *Server) handleGridPNG(w http.ResponseWriter, r *http.Request) {
	s.servePNG(w, r, render.Grid3x3PNG)
}

func (s *Server) handlePolygonPNG(w http.ResponseWriter, r *http.Request) {
	s.servePNG(w, r, render.FrequencyPolygonPNG)
}

func (s *Server) servePNG(w http.ResponseWriter, r *http.Request, renderFn func([]render.Row, int) ([]byte, error)) {
	ds, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	rows, ok := s.buildRows(w, r, ds)
	if !ok {
		return
	}

	png, err := renderFn(rows, s.intParam(r, "bins", s.cfg.DefaultBins))
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Write(png)
}

// buildRows resolves the three selected signals from the request. Missing
// selections default to the first discovered signals, repeating the last
// when fewer than three exist.
func (s *Server) buildRows(w http.ResponseWriter, r *http.Request, ds *dataset.Dataset) ([]render.Row, bool) {
	names := selectedNames(r, ds.Names())
	window := s.intParam(r, "window", s.cfg.DefaultWindow)

	rows, err := render.BuildRows(ds, names, window)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, render.ErrTooFewSamples) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return nil, false
	}
	return rows, true
}

func selectedNames(r *http.Request, available []string) []string {
	names := make([]string, render.RowCount)
	for i := range names {
		if v := r.URL.Query().Get("s" + strconv.Itoa(i+1)); v != "" {
			names[i] = v
			continue
		}
		j := i
		if j >= len(available) {
			j = len(available) - 1
		}
		if j >= 0 {
			names[i] = available[j]
		}
	}
	return names
}

func (s *Server) intParam(r *http.Request, name string, fallback int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// session returns the caller's dataset, if any.
func (s *Server) session(r *http.Request) (*dataset.Dataset, string, bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return nil, "", false
	}
	return s.store.Get(c.Value)
}

// requireSession writes a 404 when the caller has no uploaded dataset.
func (s *Server) requireSession(w http.ResponseWriter, r *http.Request) (*dataset.Dataset, bool) {
	ds, _, ok := s.session(r)
	if !ok {
		http.Error(w, "no dataset uploaded", http.StatusNotFound)
		return nil, false
	}
	return ds, true
}

// sessionID returns the caller's session ID, minting a cookie when absent.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) (string, error) {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value, nil
	}

	id, err := newSessionID()
	if err != nil {
		return "", fmt.Errorf("web: session id: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id, nil
}

var errUnsupportedFormat = errors.New("web: unsupported file format")

// loadUpload parses an uploaded spreadsheet by file extension.
func loadUpload(file io.Reader, filename, sheet string) (*dataset.Dataset, error) {
	switch strings.ToLower(path.Ext(filename)) {
	case ".xlsx":
		return dataset.LoadXLSXReader(file, sheet)
	case ".csv":
		return dataset.LoadCSVReader(file)
	default:
		return nil, fmt.Errorf("%w: %q (want .xlsx or .csv)", errUnsupportedFormat, filename)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

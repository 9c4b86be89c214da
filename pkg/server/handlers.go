package server

import (
	"encoding/json"
	"html/template"
	"net/http"
	"time"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>neuroviz</title></head>
<body>
<h1>neuroviz</h1>
<p>Scene {{.SceneID}}: {{.Points}} neurons, {{.Edges}} connections.</p>
<p>Fetch the scene as JSON from <a href="/scene">/scene</a>.</p>
</body>
</html>
`))

type indexData struct {
	SceneID string
	Points  int
	Edges   int
}

// HealthResponse is the /health payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	SceneID string `json:"sceneId"`
	Points  int    `json:"points"`
	Edges   int    `json:"edges"`
	Uptime  string `json:"uptime"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = indexTemplate.Execute(w, indexData{
		SceneID: s.scene.ID,
		Points:  len(s.scene.Points),
		Edges:   len(s.scene.Edges),
	})
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, s.scene.WebPayload())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Version: s.version,
		SceneID: s.scene.ID,
		Points:  len(s.scene.Points),
		Edges:   len(s.scene.Edges),
		Uptime:  time.Since(s.startTime).String(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

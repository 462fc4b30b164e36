// ABOUTME: Web UI server with read-only dashboard pages
// ABOUTME: Serves call summary, profile list, and filtered history at localhost
package web

import (
	"database/sql"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/harperreed/coldcall/db"
	"github.com/harperreed/coldcall/stats"
	"github.com/harperreed/coldcall/viz"
)

type Server struct {
	db        *sql.DB
	templates *template.Template
	generator *viz.GraphGenerator
}

func NewServer(database *sql.DB) (*Server, error) {
	tmpl, err := template.New("").Parse(pageTemplates)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Server{
		db:        database,
		templates: tmpl,
		generator: viz.NewGraphGenerator(database),
	}, nil
}

func (s *Server) Start(port int) error {
	http.HandleFunc("/", s.handleDashboard)
	http.HandleFunc("/profiles", s.handleProfiles)
	http.HandleFunc("/history", s.handleHistory)
	http.HandleFunc("/graph", s.handleGraph)

	addr := fmt.Sprintf(":%d", port)
	log.Printf("Starting web server at http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	dstats, err := viz.GenerateDashboardStats(s.db)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"Title": "Dashboard",
		"Stats": dstats,
	}

	s.renderTemplate(w, "dashboard", data)
}

func (s *Server) handleProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := db.ListProfiles(s.db)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	activeID, _ := db.GetActiveProfile(s.db)

	type ProfileView struct {
		Name          string
		ContactsCount int
		Pending       int
		Active        bool
	}

	var views []ProfileView
	for _, profile := range profiles {
		contacts, err := db.ListContactsForProfile(s.db, profile.ID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		views = append(views, ProfileView{
			Name:          profile.Name,
			ContactsCount: profile.ContactsCount,
			Pending:       stats.PendingCount(contacts),
			Active:        profile.ID == activeID,
		})
	}

	data := map[string]interface{}{
		"Title":    "Profiles",
		"Profiles": views,
	}

	s.renderTemplate(w, "profiles", data)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filter")

	entries, err := db.ListAllHistory(s.db)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	entries = stats.FilterHistory(entries, filter)

	data := map[string]interface{}{
		"Title":   "History",
		"Filter":  filter,
		"Entries": entries,
		"Summary": stats.Summarize(entries),
	}

	s.renderTemplate(w, "history", data)
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	var profileID *uuid.UUID
	if idStr := r.URL.Query().Get("profile_id"); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			http.Error(w, "Invalid profile ID", http.StatusBadRequest)
			return
		}
		profileID = &id
	}

	dot, err := s.generator.GenerateOutcomeGraph(profileID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	if _, err := w.Write([]byte(dot)); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

func (s *Server) renderTemplate(w http.ResponseWriter, name string, data interface{}) {
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("Template error rendering %s: %v", name, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

const pageTemplates = `
{{define "head"}}
<!DOCTYPE html>
<html>
<head>
<title>coldcall - {{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; }
th, td { padding: 0.3rem 0.8rem; border-bottom: 1px solid #ddd; text-align: left; }
nav a { margin-right: 1rem; }
</style>
</head>
<body>
<nav><a href="/">Dashboard</a><a href="/profiles">Profiles</a><a href="/history">History</a></nav>
<h1>{{.Title}}</h1>
{{end}}

{{define "dashboard"}}
{{template "head" .}}
<p>{{.Stats.TotalProfiles}} profiles &middot; {{.Stats.TotalContacts}} contacts &middot; {{.Stats.Summary.Total}} calls logged</p>
<p>Conversion rate: {{printf "%.1f" .Stats.Summary.ConversionRate}}% ({{.Stats.Summary.Ordered}} ordered)</p>
<p>Pending calls: {{.Stats.PendingCalls}}</p>
<table>
<tr><th>Outcome</th><th>Calls</th></tr>
{{range $status, $count := .Stats.CallsByStatus}}<tr><td>{{$status}}</td><td>{{$count}}</td></tr>
{{end}}
</table>
</body></html>
{{end}}

{{define "profiles"}}
{{template "head" .}}
<table>
<tr><th>Name</th><th>Contacts</th><th>Pending</th><th>Active</th></tr>
{{range .Profiles}}<tr><td>{{.Name}}</td><td>{{.ContactsCount}}</td><td>{{.Pending}}</td><td>{{if .Active}}&#10003;{{end}}</td></tr>
{{end}}
</table>
</body></html>
{{end}}

{{define "history"}}
{{template "head" .}}
<p>{{.Summary.Total}} calls &middot; {{.Summary.Answered}} answered &middot; {{.Summary.Ordered}} ordered &middot; {{printf "%.1f" .Summary.ConversionRate}}% conversion</p>
<table>
<tr><th>Date</th><th>Contact</th><th>Phone</th><th>Status</th><th>Notes</th></tr>
{{range .Entries}}<tr><td>{{.Date.Format "2006-01-02 15:04"}}</td><td>{{.ContactName}}</td><td>{{.Phone}}</td><td>{{.Status}}</td><td>{{.Notes}}</td></tr>
{{end}}
</table>
</body></html>
{{end}}
`

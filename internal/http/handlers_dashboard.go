package http

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"rentledger/internal/core"
	"rentledger/internal/ledger"
)

// authorized reports whether the request may see the dashboard,
// redirecting to the login page when it may not. An empty password
// disables the gate entirely.
func (s *Server) authorized(w http.ResponseWriter, r *http.Request) bool {
	if s.password == "" {
		return true
	}
	if s.sessions.valid(sessionToken(r)) {
		return true
	}
	http.Redirect(w, r, "/dashboard/login", http.StatusSeeOther)
	return false
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.renderLogin(w, r, false)
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		supplied := r.FormValue("password")
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(s.password)) != 1 {
			slog.WarnContext(r.Context(), "Dashboard login failed", "client_ip", extractClientIP(r))
			w.WriteHeader(http.StatusUnauthorized)
			s.renderLogin(w, r, true)
			return
		}

		token, err := s.sessions.create()
		if err != nil {
			slog.ErrorContext(r.Context(), "Session creation failed", "error", err)
			http.Error(w, "could not start session", http.StatusInternalServerError)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token := sessionToken(r); token != "" {
		s.sessions.revoke(token)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/dashboard/login", http.StatusSeeOther)
}

func (s *Server) renderLogin(w http.ResponseWriter, r *http.Request, failed bool) {
	if s.templates == nil {
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	data := struct{ Failed bool }{Failed: failed}
	if err := s.templates.ExecuteTemplate(w, "login.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Login template execution failed", "error", err)
	}
}

type dashboardRow struct {
	Timestamp   string
	Unit        string
	TenantName  string
	Amount      string
	PaymentDate string
	Mode        string
	ProofURL    string
	Notes       string
}

type dashboardView struct {
	SchemaMessage     string
	TotalAllTime      string
	TotalCurrentMonth string
	Units             []string
	SelectedUnit      string
	Rows              []dashboardRow
	Empty             bool
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !s.authorized(w, r) {
		return
	}
	if s.templates == nil {
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	table, err := s.loader.Load(r.Context())
	if err != nil {
		var schemaErr *ledger.SchemaError
		if errors.As(err, &schemaErr) {
			slog.ErrorContext(r.Context(), "Ledger schema mismatch", "error", schemaErr)
			w.WriteHeader(http.StatusInternalServerError)
			s.renderDashboard(w, r, dashboardView{SchemaMessage: schemaErr.Error()})
			return
		}
		slog.ErrorContext(r.Context(), "Ledger load failed", "error", err)
		http.Error(w, "could not load the ledger", http.StatusInternalServerError)
		return
	}

	// Totals cover the whole ledger; the unit filter only narrows the table.
	snapshot := ledger.Aggregate(core.DateOf(core.NowClock()), table.Records)

	selected := r.URL.Query().Get("unit")
	filtered := ledger.FilterByUnit(table.Records, selected)
	sorted := ledger.SortByTimestampDesc(filtered)

	view := dashboardView{
		TotalAllTime:      snapshot.TotalAllTime.Display(),
		TotalCurrentMonth: snapshot.TotalCurrentMonth.Display(),
		Units:             ledger.Units(table.Records),
		SelectedUnit:      selected,
		Rows:              make([]dashboardRow, 0, len(sorted)),
		Empty:             len(sorted) == 0,
	}
	for _, rec := range sorted {
		view.Rows = append(view.Rows, dashboardRow{
			Timestamp:   rec.Timestamp,
			Unit:        rec.Unit,
			TenantName:  rec.TenantName,
			Amount:      rec.Amount.Display(),
			PaymentDate: rec.PaymentDate.String(),
			Mode:        rec.Mode,
			ProofURL:    rec.ProofURL,
			Notes:       rec.Notes,
		})
	}

	s.renderDashboard(w, r, view)
}

func (s *Server) renderDashboard(w http.ResponseWriter, r *http.Request, view dashboardView) {
	if err := s.templates.ExecuteTemplate(w, "dashboard.html", view); err != nil {
		slog.ErrorContext(r.Context(), "Dashboard template execution failed", "error", err)
	}
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !s.authorized(w, r) {
		return
	}

	table, err := s.loader.Load(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Ledger load failed for export", "error", err)
		http.Error(w, "could not load the ledger", http.StatusInternalServerError)
		return
	}

	selected := r.URL.Query().Get("unit")
	filtered := ledger.FilterByUnit(table.Records, selected)
	sorted := ledger.SortByTimestampDesc(filtered)

	filename := fmt.Sprintf("rent_ledger_%s.csv", core.NowClock().Format(core.DateFormat))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := ledger.ExportCSV(w, ledger.Table{Records: sorted, Present: table.Present}); err != nil {
		slog.ErrorContext(r.Context(), "CSV export failed", "error", err)
	}
}

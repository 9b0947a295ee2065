package http

import (
	"errors"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"time"

	"rentledger/internal/core"
)

// maxUploadBytes bounds the multipart form, proof file included.
const maxUploadBytes = 10 << 20

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	data := struct {
		Modes     []core.PaymentMode
		Today     string
		Submitted bool
	}{
		Modes:     core.Modes(),
		Today:     core.NowClock().Format(core.DateFormat),
		Submitted: r.URL.Query().Get("submitted") == "1",
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleCreatePayment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	payment, err := s.parsePaymentForm(r)
	if err != nil {
		slog.ErrorContext(r.Context(), "Parse payment form error", "error", err, "url", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = fmt.Fprint(w, `<div class="error">Could not read the submitted form.</div>`)
		return
	}

	result, err := s.writer.Record(r.Context(), payment)
	if err != nil {
		var verr *core.ValidationError
		if errors.As(err, &verr) {
			slog.InfoContext(r.Context(), "Payment rejected", "code", verr.Code, "field", verr.Field)
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = fmt.Fprintf(w, `<div class="error" data-code="%s">%s</div>`, verr.Code, validationMessage(verr))
			return
		}
		slog.ErrorContext(r.Context(), "Payment write failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = fmt.Fprint(w, `<div class="error">Could not record the payment. Please try again.</div>`)
		return
	}

	slog.InfoContext(r.Context(), "Payment recorded",
		"row_ref", result.RowRef,
		"unit", payment.Unit,
		"amount_cents", payment.Amount.Cents,
		"proof_uploaded", result.ProofURL != "")

	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, `<div class="success">Payment of %s recorded for unit %s.</div>`,
		html.EscapeString(payment.Amount.Display()), html.EscapeString(payment.Unit))
}

// parsePaymentForm maps the submission form onto a draft payment. Field
// validation is left to the writer so the fail-fast order stays in one
// place; a malformed amount simply parses to zero and fails there.
func (s *Server) parsePaymentForm(r *http.Request) (core.Payment, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		if err != http.ErrNotMultipart {
			return core.Payment{}, err
		}
		if err := r.ParseForm(); err != nil {
			return core.Payment{}, err
		}
	}

	amount := core.Money{}
	if cents, err := core.ParseDecimalToCents(r.FormValue("amount_paid")); err == nil {
		amount = core.Money{Cents: cents}
	}

	date := core.DateOf(core.NowClock())
	if raw := r.FormValue("payment_date"); raw != "" {
		if t, err := time.ParseInLocation(core.DateFormat, raw, core.AppZone); err == nil {
			date = core.DateOf(t)
		}
	}

	mode := core.PaymentMode(r.FormValue("payment_mode"))
	if !mode.Valid() {
		mode = core.OtherMode
	}

	payment := core.Payment{
		Unit:       r.FormValue("unit_number"),
		TenantName: r.FormValue("tenant_name"),
		Amount:     amount,
		Date:       date,
		Mode:       mode,
		Notes:      r.FormValue("notes"),
	}

	if file, header, err := r.FormFile("proof_file"); err == nil {
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return core.Payment{}, fmt.Errorf("read proof file: %w", err)
		}
		if len(data) > 0 {
			payment.Proof = &core.ProofFile{
				Name:     header.Filename,
				MIMEType: header.Header.Get("Content-Type"),
				Data:     data,
			}
		}
	}

	return payment, nil
}

func validationMessage(err *core.ValidationError) string {
	switch err.Code {
	case core.ErrUnitRequired.Code:
		return "Unit number is required."
	case core.ErrNameRequired.Code:
		return "Tenant name is required."
	case core.ErrAmountInvalid.Code:
		return "Amount paid must be greater than zero."
	default:
		return "Submission is invalid."
	}
}

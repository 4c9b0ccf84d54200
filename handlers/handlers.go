package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"netbank/auth"
	"netbank/config"
	"netbank/ledger"
	"netbank/models"
	"netbank/store"
	"netbank/voice"
)

// Handler carries the server's collaborators; one instance serves every
// route.
type Handler struct {
	store      *store.Store
	gate       *auth.Gate
	cfg        *config.Config
	classifier voice.Classifier
}

func New(st *store.Store, gate *auth.Gate, cfg *config.Config, classifier voice.Classifier) *Handler {
	return &Handler{store: st, gate: gate, cfg: cfg, classifier: classifier}
}

type signupRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	DOB      string `json:"dob"`
	Addr     string `json:"addr"`
	Password string `json:"password"`
	PIN      string `json:"pin"`
	Lang     string `json:"lang"`
}

// Signup creates an account, credits the opening bonus and logs the caller
// straight in.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, models.ErrMissingFields)
		return
	}
	if req.Name == "" || req.Phone == "" || req.DOB == "" || req.Addr == "" || req.Password == "" || req.PIN == "" {
		writeError(w, models.ErrMissingFields)
		return
	}
	if req.Lang == "" {
		req.Lang = "en"
	}

	// Hash outside the store lock; bcrypt is slow on purpose.
	passwordHash, err := auth.HashSecret(req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	pinHash, err := auth.HashSecret(req.PIN)
	if err != nil {
		writeError(w, err)
		return
	}

	var created models.Customer
	err = h.store.Update(func(doc *models.Document) error {
		if store.NameTaken(doc, req.Name) {
			return models.ErrDuplicateName
		}
		c := &models.Customer{
			AccNo:        fmt.Sprintf("NB%d", doc.NextAccNo),
			Name:         req.Name,
			Phone:        req.Phone,
			DOB:          req.DOB,
			Addr:         req.Addr,
			Balance:      decimal.Zero,
			PINHash:      pinHash,
			PasswordHash: passwordHash,
			Lang:         req.Lang,
			Txns:         []models.Transaction{},
		}
		doc.NextAccNo++
		ledger.Credit(c, h.cfg.SignupBonus, "Account Opening Bonus", time.Now())
		doc.Customers = append(doc.Customers, c)
		created = *c
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := h.gate.IssueToken(created.AccNo, created.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Account created",
		"accNo":   created.AccNo,
		"token":   token,
		"user":    created.Sanitized(),
	})
}

type loginRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

// Login resolves the identifier via account lookup, so customers may log in
// with their account number or their name.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, models.ErrMissingFields)
		return
	}
	if req.ID == "" || req.Password == "" {
		writeError(w, models.ErrMissingFields)
		return
	}

	cust, err := h.store.Find(req.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	if !auth.VerifySecret(req.Password, cust.PasswordHash) {
		writeError(w, models.ErrWrongPassword)
		return
	}

	token, err := h.gate.IssueToken(cust.AccNo, cust.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  cust.Sanitized(),
	})
}

type voiceLoginRequest struct {
	AccNo string `json:"accNo"`
}

// VoiceLogin issues a credential from an account number alone. This is an
// identity-assumption endpoint for demos; it refuses to run unless
// DEMO_MODE is set.
func (h *Handler) VoiceLogin(w http.ResponseWriter, r *http.Request) {
	if !h.cfg.DemoMode {
		writeJSON(w, http.StatusForbidden, map[string]string{"message": "Voice login is disabled"})
		return
	}

	var req voiceLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, models.ErrMissingFields)
		return
	}
	cust, err := h.store.Customer(req.AccNo)
	if err != nil {
		writeError(w, err)
		return
	}
	token, err := h.gate.IssueToken(cust.AccNo, cust.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  cust.Sanitized(),
	})
}

type directoryEntry struct {
	AccNo string `json:"accNo"`
	Name  string `json:"name"`
}

// ListCustomers is the open directory used by the voice-login UI: names and
// account numbers only, nothing else leaves the store.
func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers := h.store.List()
	out := make([]directoryEntry, 0, len(customers))
	for _, c := range customers {
		out = append(out, directoryEntry{AccNo: c.AccNo, Name: c.Name})
	}
	writeJSON(w, http.StatusOK, out)
}

// Me returns the caller's own record, secrets omitted.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFrom(r.Context())
	cust, err := h.store.Customer(claims.AccNo)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cust.Sanitized())
}

// MyTransactions returns the caller's statement, most recent first.
func (h *Handler) MyTransactions(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFrom(r.Context())
	cust, err := h.store.Customer(claims.AccNo)
	if err != nil {
		writeError(w, err)
		return
	}
	if cust.Txns == nil {
		cust.Txns = []models.Transaction{}
	}
	writeJSON(w, http.StatusOK, cust.Txns)
}

type transferRequest struct {
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
	Mode   string          `json:"mode"`
	PIN    string          `json:"pin"`
}

// Transfer is the funds-transfer orchestrator. Validation order, first
// failure wins: sender resolves, PIN verifies, amount is positive and
// covered, payee resolves unless the rail is UPI. The whole mutation runs
// inside one store update, so either the debit, any credit and the audit
// record all land together or nothing does.
func (h *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFrom(r.Context())

	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, models.ErrMissingFields)
		return
	}

	if strings.TrimSpace(req.To) == "" {
		writeError(w, models.ErrMissingFields)
		return
	}
	switch req.Mode {
	case models.ModeNEFT, models.ModeIMPS, models.ModeUPI:
	default:
		writeError(w, models.ErrInvalidMode)
		return
	}

	var out ledger.Outcome
	err := h.store.Update(func(doc *models.Document) error {
		sender := store.ByAccNo(doc, claims.AccNo)
		if sender == nil {
			return models.ErrNotFound
		}
		if !auth.VerifySecret(req.PIN, sender.PINHash) {
			return models.ErrInvalidPIN
		}
		if !req.Amount.IsPositive() || req.Amount.GreaterThan(sender.Balance) {
			return models.ErrInvalidAmount
		}
		receiver := store.Find(doc, req.To)
		if receiver == nil && req.Mode != models.ModeUPI {
			return models.ErrBeneficiaryNotFound
		}
		out = ledger.ApplyTransfer(doc, sender, receiver, req.To, req.Amount, req.Mode, time.Now())
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}

	resp := map[string]interface{}{
		"message": "Transfer successful",
		"sender":  out.Sender.Sanitized(),
	}
	if out.Receiver != nil {
		resp["receiver"] = out.Receiver.Sanitized()
	}
	writeJSON(w, http.StatusOK, resp)
}

type assistRequest struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

// Assist classifies an assistant utterance and tags its sentiment. The
// classifier is pluggable; the reply key selects a localized string
// client-side, so the server never renders reply text itself.
func (h *Handler) Assist(w http.ResponseWriter, r *http.Request) {
	var req assistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, models.ErrMissingFields)
		return
	}
	if req.Text == "" {
		writeError(w, models.ErrMissingFields)
		return
	}
	intent := h.classifier.Classify(req.Text, req.Lang)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"intent":    intent,
		"replyKey":  "reply_" + intent.Tag,
		"sentiment": voice.Sentiment(req.Text),
	})
}

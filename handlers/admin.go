package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"

	"netbank/auth"
	"netbank/ledger"
	"netbank/models"
	"netbank/store"
)

type adminLoginRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

// AdminLogin checks the configured admin credential and issues a token
// carrying the reserved admin account number.
func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, models.ErrMissingFields)
		return
	}
	if req.ID != h.cfg.AdminAccNo || req.Password != h.cfg.AdminPassword {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid admin credentials"})
		return
	}
	token, err := h.gate.IssueToken(h.cfg.AdminAccNo, "Admin")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// AdminListCustomers returns every record, secrets omitted.
func (h *Handler) AdminListCustomers(w http.ResponseWriter, r *http.Request) {
	customers := h.store.List()
	out := make([]models.Customer, 0, len(customers))
	for _, c := range customers {
		out = append(out, c.Sanitized())
	}
	writeJSON(w, http.StatusOK, out)
}

// AdminGetCustomer returns one record by account number.
func (h *Handler) AdminGetCustomer(w http.ResponseWriter, r *http.Request) {
	cust, err := h.store.Customer(mux.Vars(r)["accNo"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cust.Sanitized())
}

type adminCreateRequest struct {
	Name     string           `json:"name"`
	Phone    string           `json:"phone"`
	DOB      string           `json:"dob"`
	Addr     string           `json:"addr"`
	Password string           `json:"password"`
	PIN      string           `json:"pin"`
	Lang     string           `json:"lang"`
	Balance  *decimal.Decimal `json:"balance"`
}

// AdminCreateCustomer opens an account on a customer's behalf. The opening
// balance defaults to the signup bonus and is recorded as a CR entry like
// any other deposit.
func (h *Handler) AdminCreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req adminCreateRequest
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
	opening := h.cfg.SignupBonus
	if req.Balance != nil {
		opening = *req.Balance
	}
	if opening.IsNegative() {
		writeError(w, models.ErrInvalidAmount)
		return
	}

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
			Status:       "Active",
			CreatedAt:    time.Now().Format(time.RFC3339),
			Txns:         []models.Transaction{},
		}
		doc.NextAccNo++
		ledger.Credit(c, opening, "Account Created by Admin", time.Now())
		doc.Customers = append(doc.Customers, c)
		created = *c
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Customer created successfully",
		"customer": created.Sanitized(),
	})
}

type adminUpdateRequest struct {
	Name    *string          `json:"name"`
	Phone   *string          `json:"phone"`
	DOB     *string          `json:"dob"`
	Addr    *string          `json:"addr"`
	Balance *decimal.Decimal `json:"balance"`
	PIN     *string          `json:"pin"`
	Lang    *string          `json:"lang"`
	Status  *string          `json:"status"`
}

// AdminUpdateCustomer edits any field except the account number. A balance
// edit goes through the ledger so the statement records the adjustment; a
// new PIN is re-hashed.
func (h *Handler) AdminUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	accNo := mux.Vars(r)["accNo"]

	var req adminUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, models.ErrMissingFields)
		return
	}

	var pinHash string
	if req.PIN != nil {
		var err error
		pinHash, err = auth.HashSecret(*req.PIN)
		if err != nil {
			writeError(w, err)
			return
		}
	}

	var updated models.Customer
	err := h.store.Update(func(doc *models.Document) error {
		c := store.ByAccNo(doc, accNo)
		if c == nil {
			return models.ErrNotFound
		}
		if req.Name != nil {
			c.Name = *req.Name
		}
		if req.Phone != nil {
			c.Phone = *req.Phone
		}
		if req.DOB != nil {
			c.DOB = *req.DOB
		}
		if req.Addr != nil {
			c.Addr = *req.Addr
		}
		if req.Balance != nil {
			if req.Balance.IsNegative() {
				return models.ErrInvalidAmount
			}
			ledger.Adjust(c, *req.Balance, time.Now())
		}
		if req.PIN != nil {
			c.PINHash = pinHash
		}
		if req.Lang != nil {
			c.Lang = *req.Lang
		}
		if req.Status != nil {
			c.Status = *req.Status
		}
		updated = *c
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Customer updated",
		"customer": updated.Sanitized(),
	})
}

// AdminDeleteCustomer removes an account permanently. No tombstone is kept;
// the audit log retains any transfers the account was party to.
func (h *Handler) AdminDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	accNo := mux.Vars(r)["accNo"]

	var deleted models.Customer
	err := h.store.Update(func(doc *models.Document) error {
		for i, c := range doc.Customers {
			if c.AccNo == accNo {
				deleted = *c
				doc.Customers = append(doc.Customers[:i], doc.Customers[i+1:]...)
				return nil
			}
		}
		return models.ErrNotFound
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Customer deleted",
		"customer": deleted.Sanitized(),
	})
}

// AdminTransferLog returns the global transfer audit log.
func (h *Handler) AdminTransferLog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.TransferLog())
}

// ExportTransferLog renders the audit log as a PDF or XLSX report,
// streamed straight to the response. No format parameter returns JSON.
func (h *Handler) ExportTransferLog(w http.ResponseWriter, r *http.Request) {
	records := h.store.TransferLog()

	switch r.URL.Query().Get("format") {
	case "pdf":
		h.exportPDF(records, w)
	case "xlsx":
		h.exportXLSX(records, w)
	default:
		writeJSON(w, http.StatusOK, records)
	}
}

func (h *Handler) exportPDF(records []models.TransferRecord, w http.ResponseWriter) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Transfer Audit Log")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(30, 7, "Date")
	pdf.Cell(35, 7, "From")
	pdf.Cell(35, 7, "To")
	pdf.Cell(30, 7, "Amount")
	pdf.Cell(25, 7, "Mode")
	pdf.Cell(25, 7, "Status")
	pdf.Ln(7)

	pdf.SetFont("Arial", "", 12)
	for _, rec := range records {
		pdf.CellFormat(30, 7, rec.Date, "1", 0, "", false, 0, "")
		pdf.CellFormat(35, 7, rec.From, "1", 0, "", false, 0, "")
		pdf.CellFormat(35, 7, rec.To, "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 7, rec.Amount.StringFixed(2), "1", 0, "", false, 0, "")
		pdf.CellFormat(25, 7, rec.Mode, "1", 0, "", false, 0, "")
		pdf.CellFormat(25, 7, rec.Status, "1", 0, "", false, 0, "")
		pdf.Ln(7)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="transfer_log.pdf"`)
	if err := pdf.Output(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) exportXLSX(records []models.TransferRecord, w http.ResponseWriter) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transfers")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	row := sheet.AddRow()
	for _, title := range []string{"Date", "From", "To", "Amount", "Mode", "Status"} {
		row.AddCell().SetValue(title)
	}
	for _, rec := range records {
		row = sheet.AddRow()
		row.AddCell().SetValue(rec.Date)
		row.AddCell().SetValue(rec.From)
		row.AddCell().SetValue(rec.To)
		row.AddCell().SetValue(rec.Amount.StringFixed(2))
		row.AddCell().SetValue(rec.Mode)
		row.AddCell().SetValue(rec.Status)
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="transfer_log.xlsx"`)
	if err := file.Write(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

package handlers

import "github.com/gorilla/mux"

// Router wires every route. Public routes are registered first, then the
// admin subrouter, then the authenticated customer subrouter; mux matches
// in registration order, so the more specific prefixes must come first.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/signup", h.Signup).Methods("POST")
	r.HandleFunc("/api/login", h.Login).Methods("POST")
	r.HandleFunc("/api/voice-login", h.VoiceLogin).Methods("POST")
	r.HandleFunc("/api/customers/list", h.ListCustomers).Methods("GET")
	r.HandleFunc("/api/assist", h.Assist).Methods("POST")
	r.HandleFunc("/api/admin/login", h.AdminLogin).Methods("POST")

	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(h.gate.VerifyToken, h.gate.RequireAdmin)
	admin.HandleFunc("/customers", h.AdminListCustomers).Methods("GET")
	admin.HandleFunc("/customers", h.AdminCreateCustomer).Methods("POST")
	admin.HandleFunc("/customers/{accNo}", h.AdminGetCustomer).Methods("GET")
	admin.HandleFunc("/customers/{accNo}", h.AdminUpdateCustomer).Methods("PUT")
	admin.HandleFunc("/customers/{accNo}", h.AdminDeleteCustomer).Methods("DELETE")
	admin.HandleFunc("/transactions", h.AdminTransferLog).Methods("GET")
	admin.HandleFunc("/transactions/export", h.ExportTransferLog).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(h.gate.VerifyToken)
	api.HandleFunc("/customers/me", h.Me).Methods("GET")
	api.HandleFunc("/transactions/me", h.MyTransactions).Methods("GET")
	api.HandleFunc("/transfer", h.Transfer).Methods("POST")

	return r
}

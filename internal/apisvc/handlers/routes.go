package handlers

import (
	"github.com/go-chi/chi"
	"github.com/go-chi/jwtauth"
)

func (h *Handler) SetRoutes(r *chi.Mux) {
	r.Route("/v1", func(r chi.Router) {

		// public routes
		r.Get("/health", h.HealthHandler)
		r.Post("/auth/login", h.LoginHandler)
		r.Get("/contents/slug/{slug}", h.GetContentBySlugHandler)

		// Secure routes
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(h.tokenAuth))
			r.Use(jwtauth.Authenticator)

			// dropdowns for dashboard forms
			r.Get("/currencies/dropdown/active", h.ActiveCurrenciesHandler)
			r.Get("/networks/dropdown/active", h.ActiveNetworksHandler)
			r.Get("/banks/dropdown/active", h.ActiveBanksHandler)
			r.Get("/countries/dropdown/active", h.ActiveCountriesHandler)

			// transactions
			r.Post("/deposits", h.CreateDepositHandler)
			r.Post("/withdrawals", h.CreateWithdrawHandler)

			// admin panel
			r.Group(func(r chi.Router) {
				r.Use(h.requireAdmin)

				r.Get("/dashboard/summary", h.DashboardSummaryHandler)
				r.Get("/users/search", h.SearchUserHandler)

				r.Get("/deposits", h.ListDepositsHandler)
				r.Get("/deposits/receipt", h.VerifyReceiptHandler)
				r.Get("/deposits/{id}", h.GetDepositHandler)
				r.Patch("/deposits/{id}/status", h.UpdateDepositStatusHandler)

				r.Get("/withdrawals", h.ListWithdrawalsHandler)
				r.Get("/withdrawals/{id}", h.GetWithdrawalHandler)
				r.Patch("/withdrawals/{id}/status", h.UpdateWithdrawStatusHandler)

				r.Route("/currencies", func(r chi.Router) {
					r.Get("/", h.ListCurrenciesHandler)
					r.Post("/", h.CreateCurrencyHandler)
					r.Get("/{id}", h.GetCurrencyHandler)
					r.Put("/{id}", h.UpdateCurrencyHandler)
					r.Patch("/{id}/status", h.UpdateCurrencyStatusHandler)
					r.Delete("/{id}", h.DeleteCurrencyHandler)
				})

				r.Route("/networks", func(r chi.Router) {
					r.Get("/", h.ListNetworksHandler)
					r.Post("/", h.CreateNetworkHandler)
					r.Get("/{id}", h.GetNetworkHandler)
					r.Put("/{id}", h.UpdateNetworkHandler)
					r.Patch("/{id}/status", h.UpdateNetworkStatusHandler)
					r.Delete("/{id}", h.DeleteNetworkHandler)
				})

				r.Route("/banks", func(r chi.Router) {
					r.Get("/", h.ListBanksHandler)
					r.Post("/", h.CreateBankHandler)
					r.Get("/{id}", h.GetBankHandler)
					r.Put("/{id}", h.UpdateBankHandler)
					r.Patch("/{id}/status", h.UpdateBankStatusHandler)
					r.Delete("/{id}", h.DeleteBankHandler)
				})

				r.Route("/bank-accounts", func(r chi.Router) {
					r.Get("/", h.ListBankAccountsHandler)
					r.Post("/", h.CreateBankAccountHandler)
					r.Get("/{id}", h.GetBankAccountHandler)
					r.Put("/{id}", h.UpdateBankAccountHandler)
					r.Patch("/{id}/status", h.UpdateBankAccountStatusHandler)
					r.Delete("/{id}", h.DeleteBankAccountHandler)
				})

				r.Route("/countries", func(r chi.Router) {
					r.Get("/", h.ListCountriesHandler)
					r.Post("/", h.CreateCountryHandler)
					r.Get("/{id}", h.GetCountryHandler)
					r.Put("/{id}", h.UpdateCountryHandler)
					r.Patch("/{id}/status", h.UpdateCountryStatusHandler)
					r.Delete("/{id}", h.DeleteCountryHandler)
				})

				r.Route("/contents", func(r chi.Router) {
					r.Get("/", h.ListContentsHandler)
					r.Post("/", h.CreateContentHandler)
					r.Get("/{id}", h.GetContentHandler)
					r.Put("/{id}", h.UpdateContentHandler)
					r.Patch("/{id}/status", h.UpdateContentStatusHandler)
					r.Delete("/{id}", h.DeleteContentHandler)
				})

				r.Route("/transaction-fees", func(r chi.Router) {
					r.Get("/", h.ListFeesHandler)
					r.Post("/", h.CreateFeeHandler)
					r.Get("/{id}", h.GetFeeHandler)
					r.Put("/{id}", h.UpdateFeeHandler)
					r.Delete("/{id}", h.DeleteFeeHandler)
				})

				r.Route("/users", func(r chi.Router) {
					r.Get("/", h.ListUsersHandler)
					r.Post("/", h.CreateUserHandler)
					r.Get("/{id}", h.GetUserHandler)
					r.Put("/{id}", h.UpdateUserHandler)
					r.Patch("/{id}/status", h.UpdateUserStatusHandler)
					r.Delete("/{id}", h.DeleteUserHandler)
				})
			})
		})
	})
}

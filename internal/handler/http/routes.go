package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
	})

	// routes guarded by the JWT auth middleware
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/clients", func(r chi.Router) {
			r.Post("/", h.createClient)
			r.Get("/", h.getClients)
			r.Get("/{id}", h.getClient)
			r.Put("/{id}", h.updateClient)
			r.Delete("/{id}", h.archiveClient)
		})

		r.Route("/api/projects", func(r chi.Router) {
			r.Post("/", h.createProject)
			r.Get("/", h.getProjects)
			r.Get("/{id}", h.getProject)
			r.Put("/{id}", h.updateProject)
			r.Get("/{id}/time-summary", h.getTimeSummary)
		})

		r.Route("/api/time-entries", func(r chi.Router) {
			r.Post("/", h.logTime)
			r.Get("/", h.getTimeEntries)
			r.Delete("/{id}", h.deleteTimeEntry)
		})

		r.Route("/api/invoices", func(r chi.Router) {
			r.Post("/", h.createInvoice)
			r.Get("/", h.getInvoices)
			r.Get("/{id}", h.getInvoice)
			r.Patch("/{id}/status", h.updateInvoiceStatus)
		})

		r.Route("/api/salary", func(r chi.Router) {
			r.Post("/", h.schedulePayment)
			r.Get("/", h.getPayments)
			r.Post("/{id}/paid", h.markPaymentPaid)
		})

		r.Route("/api/cv", func(r chi.Router) {
			r.Post("/", h.createCVProfile)
			r.Get("/", h.getCVProfiles)
			r.Get("/{id}", h.getCVProfile)
			r.Put("/{id}", h.updateCVProfile)
			r.Delete("/{id}", h.deleteCVProfile)
		})

		r.Route("/api/documents", func(r chi.Router) {
			r.Post("/", h.createDocument)
			r.Get("/", h.getDocuments)
			r.Get("/{id}", h.getDocument)
			r.Put("/{id}", h.updateDocument)
			r.Delete("/{id}", h.deleteDocument)
		})

		r.Route("/api/vault", func(r chi.Router) {
			r.Post("/unlock", h.unlockVault)
			r.Post("/lock", h.lockVault)
			r.Get("/status", h.vaultStatus)
			r.Post("/generate-password", h.generatePassword)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

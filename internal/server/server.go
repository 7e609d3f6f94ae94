package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"fenix_office/internal/handlers"
	"fenix_office/internal/transport/auth"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(port string, h *handlers.Handlers, tokens auth.TokenRepo) *Server {
	r := mux.NewRouter()

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	api := r.NewRoute().Subrouter()
	api.Use(auth.BearerMiddleware(tokens))

	api.HandleFunc("/state", h.GetState).Methods(http.MethodGet)
	api.HandleFunc("/sync/run", h.RunSync).Methods(http.MethodPost)

	api.HandleFunc("/clients", h.ListClients).Methods(http.MethodGet)
	api.HandleFunc("/clients", h.CreateClient).Methods(http.MethodPost)
	api.HandleFunc("/clients/{id}", h.UpdateClient).Methods(http.MethodPut)
	api.HandleFunc("/clients/{id}", h.DeleteClient).Methods(http.MethodDelete)

	api.HandleFunc("/invoices", h.ListInvoices).Methods(http.MethodGet)
	api.HandleFunc("/invoices", h.CreateInvoice).Methods(http.MethodPost)
	api.HandleFunc("/invoices/{id}", h.UpdateInvoice).Methods(http.MethodPut)
	api.HandleFunc("/invoices/{id}/pay", h.PayInvoice).Methods(http.MethodPost)
	api.HandleFunc("/invoices/{id}", h.DeleteInvoice).Methods(http.MethodDelete)

	api.HandleFunc("/payables", h.ListPayables).Methods(http.MethodGet)
	api.HandleFunc("/payables", h.CreatePayable).Methods(http.MethodPost)
	api.HandleFunc("/payables/{id}", h.UpdatePayable).Methods(http.MethodPut)
	api.HandleFunc("/payables/{id}", h.DeletePayable).Methods(http.MethodDelete)

	api.HandleFunc("/daily-payments", h.ListDailyPayments).Methods(http.MethodGet)
	api.HandleFunc("/daily-payments", h.CreateDailyPayment).Methods(http.MethodPost)
	api.HandleFunc("/daily-payments/{id}", h.UpdateDailyPayment).Methods(http.MethodPut)
	api.HandleFunc("/daily-payments/{id}", h.DeleteDailyPayment).Methods(http.MethodDelete)

	api.HandleFunc("/card-expenses", h.ListCardExpenses).Methods(http.MethodGet)
	api.HandleFunc("/card-expenses", h.CreateCardExpense).Methods(http.MethodPost)
	api.HandleFunc("/card-expenses/{id}", h.DeleteCardExpense).Methods(http.MethodDelete)
	api.HandleFunc("/card-expenses/month", h.CardMonth).Methods(http.MethodGet)
	api.HandleFunc("/card-payments/{card}/{month}", h.SetCardPayment).Methods(http.MethodPut)

	api.HandleFunc("/calendar-events", h.ListCalendarEvents).Methods(http.MethodGet)
	api.HandleFunc("/calendar-events", h.CreateCalendarEvent).Methods(http.MethodPost)
	api.HandleFunc("/calendar-events/{id}", h.DeleteCalendarEvent).Methods(http.MethodDelete)

	api.HandleFunc("/reports/monthly", h.ExportMonthlyReport).Methods(http.MethodPost)

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%s", port),
			Handler:      r,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shCtx)
	case err := <-errCh:
		return err
	}
}

package http

import (
	"net/http"

	"hospital-records-api/internal/delivery/http/handler"
	"hospital-records-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router         *mux.Router
	authHandler    *handler.AuthHandler
	patientHandler *handler.PatientHandler
	recordHandler  *handler.MedicalRecordHandler
	authMiddleware *middleware.AuthMiddleware
	corsMiddleware *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	recordHandler *handler.MedicalRecordHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		authHandler:    authHandler,
		patientHandler: patientHandler,
		recordHandler:  recordHandler,
		authMiddleware: authMiddleware,
		corsMiddleware: corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	r.router.HandleFunc("/signup", r.authHandler.Signup).Methods(http.MethodPost)
	r.router.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Collection routes (token + clinician role gate)
	clinician := r.router.PathPrefix("/patients").Subrouter()
	clinician.Use(r.authMiddleware.Authenticate)
	clinician.Use(middleware.RequireClinician)
	clinician.HandleFunc("", r.patientHandler.ListPatients).Methods(http.MethodGet)
	clinician.HandleFunc("", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	clinician.HandleFunc("/records/add", r.recordHandler.AddRecord).Methods(http.MethodPost)

	// Object routes (token only; object-level authorization happens after
	// the target is resolved)
	object := r.router.PathPrefix("/patients").Subrouter()
	object.Use(r.authMiddleware.Authenticate)
	object.HandleFunc("/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	object.HandleFunc("/{id}/records", r.recordHandler.ListPatientRecords).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

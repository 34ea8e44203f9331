package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	clearResourceHandler "github.com/m04kA/SMC-BookingBrowser/internal/api/handlers/clear_resource"
	confirmBookingHandler "github.com/m04kA/SMC-BookingBrowser/internal/api/handlers/confirm_booking"
	createSessionHandler "github.com/m04kA/SMC-BookingBrowser/internal/api/handlers/create_session"
	deleteSessionHandler "github.com/m04kA/SMC-BookingBrowser/internal/api/handlers/delete_session"
	getSessionHandler "github.com/m04kA/SMC-BookingBrowser/internal/api/handlers/get_session"
	getViewHandler "github.com/m04kA/SMC-BookingBrowser/internal/api/handlers/get_view"
	listResourcesHandler "github.com/m04kA/SMC-BookingBrowser/internal/api/handlers/list_resources"
	loginHandler "github.com/m04kA/SMC-BookingBrowser/internal/api/handlers/login"
	selectResourceHandler "github.com/m04kA/SMC-BookingBrowser/internal/api/handlers/select_resource"
	updateCredentialsHandler "github.com/m04kA/SMC-BookingBrowser/internal/api/handlers/update_credentials"
	updateStateHandler "github.com/m04kA/SMC-BookingBrowser/internal/api/handlers/update_state"
	"github.com/m04kA/SMC-BookingBrowser/internal/api/middleware"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/registry"
	getViewUC "github.com/m04kA/SMC-BookingBrowser/internal/usecase/get_view"
)

// Sessions реестр сессий
type Sessions interface {
	Create() *registry.Session
	Get(id string) (*registry.Session, error)
	Delete(id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Deps зависимости роутера
type Deps struct {
	Sessions Sessions
	Catalog  listResourcesHandler.ResourceCatalog
	Logger   Logger

	// Metrics nil - метрики выключены
	Metrics     middleware.HTTPObserver
	MetricsPath string
}

// NewRouter собирает HTTP роутер сервиса
func NewRouter(deps Deps) *mux.Router {
	log := deps.Logger

	// Инициализируем use cases
	getViewUseCase := getViewUC.NewUseCase(log)

	// Инициализируем handlers
	createSession := createSessionHandler.NewHandler(deps.Sessions, log)
	getSession := getSessionHandler.NewHandler(log)
	deleteSession := deleteSessionHandler.NewHandler(deps.Sessions, log)
	updateCredentials := updateCredentialsHandler.NewHandler(log)
	login := loginHandler.NewHandler(log)
	listResources := listResourcesHandler.NewHandler(deps.Catalog, log)
	updateState := updateStateHandler.NewHandler(log)
	selectResource := selectResourceHandler.NewHandler(log)
	clearResource := clearResourceHandler.NewHandler(log)
	confirmBooking := confirmBookingHandler.NewHandler(log)
	getView := getViewHandler.NewHandler(getViewUseCase, log)

	r := mux.NewRouter()

	if deps.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(deps.Metrics))
		if deps.MetricsPath != "" {
			r.Handle(deps.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
		}
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без входа)
	// ============================================================

	// Справочник ресурсов
	api.HandleFunc("/resources", listResources.Handle).Methods(http.MethodGet)

	// Новая сессия (вкладка браузера)
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)

	// Выход удаляет сессию, поэтому идет мимо Session middleware
	api.HandleFunc("/sessions/{"+middleware.SessionIDVar+"}", deleteSession.Handle).Methods(http.MethodDelete)

	sessions := api.PathPrefix("/sessions/{" + middleware.SessionIDVar + "}").Subrouter()
	sessions.Use(middleware.Session(deps.Sessions))

	// Снимок сессии: форма входа и состояние
	sessions.HandleFunc("", getSession.Handle).Methods(http.MethodGet)

	// --- Форма входа ---
	sessions.HandleFunc("/credentials", updateCredentials.Handle).Methods(http.MethodPatch)
	sessions.HandleFunc("/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют завершенного входа)
	// ============================================================

	protected := sessions.PathPrefix("").Subrouter()
	protected.Use(middleware.RequireAuthenticated)

	// --- Состояние бронирования ---
	protected.HandleFunc("/state", updateState.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/resource", selectResource.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/resource", clearResource.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/confirm", confirmBooking.Handle).Methods(http.MethodPost)

	// --- Экран ---
	protected.HandleFunc("/view", getView.Handle).Methods(http.MethodGet)

	return r
}

package router

import (
	"github.com/redis/go-redis/v9"

	"worksite/backend/foundation/web"
	"worksite/backend/internal/auth"
	"worksite/backend/internal/middleware"
	"worksite/backend/internal/pkg/repository/postgresql"
	service_journal "worksite/backend/internal/service/journal"

	"worksite/backend/internal/repository/postgres/buildingsite"
	"worksite/backend/internal/repository/postgres/company"
	"worksite/backend/internal/repository/postgres/dailynote"
	"worksite/backend/internal/repository/postgres/dailypresence"
	"worksite/backend/internal/repository/postgres/journal"
	"worksite/backend/internal/repository/postgres/user"
	"worksite/backend/internal/repository/postgres/worker"
	"worksite/backend/internal/repository/postgres/workertype"

	auth_controller "worksite/backend/internal/controller/http/v1/auth"
	buildingsite_controller "worksite/backend/internal/controller/http/v1/buildingsite"
	company_controller "worksite/backend/internal/controller/http/v1/company"
	dailynote_controller "worksite/backend/internal/controller/http/v1/dailynote"
	dailypresence_controller "worksite/backend/internal/controller/http/v1/dailypresence"
	journal_controller "worksite/backend/internal/controller/http/v1/journal"
	worker_controller "worksite/backend/internal/controller/http/v1/worker"
	workertype_controller "worksite/backend/internal/controller/http/v1/workertype"
)

type Router struct {
	*web.App
	postgresDB *postgresql.Database
	redisDB    *redis.Client
	port       string
	auth       *auth.Auth
	baseURL    string
}

func NewRouter(
	app *web.App,
	postgresDB *postgresql.Database,
	redisDB *redis.Client,
	port string,
	auth *auth.Auth,
	baseURL string,
) *Router {
	return &Router{
		app,
		postgresDB,
		redisDB,
		port,
		auth,
		baseURL,
	}
}

func (r Router) Init() error {

	r.HandleMethodNotAllowed = true
	r.Use(middleware.CorsMiddleware())

	// - postgresql
	userPostgres := user.NewRepository(r.postgresDB)
	buildingSitePostgres := buildingsite.NewRepository(r.postgresDB)
	workerPostgres := worker.NewRepository(r.postgresDB)
	companyPostgres := company.NewRepository(r.postgresDB)
	workerTypePostgres := workertype.NewRepository(r.postgresDB)
	dailyNotePostgres := dailynote.NewRepository(r.postgresDB)
	dailyPresencePostgres := dailypresence.NewRepository(r.postgresDB)
	journalPostgres := journal.NewRepository(r.postgresDB)

	// - service
	journalGenerator := service_journal.NewGenerator(journalPostgres)

	// controller
	authController := auth_controller.NewController(userPostgres, r.auth)
	buildingSiteController := buildingsite_controller.NewController(buildingSitePostgres)
	workerController := worker_controller.NewController(workerPostgres)
	companyController := company_controller.NewController(companyPostgres)
	workerTypeController := workertype_controller.NewController(workerTypePostgres)
	dailyNoteController := dailynote_controller.NewController(dailyNotePostgres)
	dailyPresenceController := dailypresence_controller.NewController(dailyPresencePostgres)
	journalController := journal_controller.NewController(journalGenerator, journalPostgres, r.baseURL)

	// #auth
	r.Post("/api/v1/sign-in", authController.SignIn)
	r.Post("/api/v1/sign-up", authController.Register)
	r.Post("/api/v1/refresh-token", authController.RefreshToken)

	// #building sites
	r.Get("/api/v1/building-site/list", buildingSiteController.GetList, middleware.Authenticate(r.auth, auth.RoleOwner))
	r.Get("/api/v1/building-site/:id", buildingSiteController.GetDetailById, middleware.Authenticate(r.auth, auth.RoleOwner))
	r.Post("/api/v1/building-site/create", buildingSiteController.Create, middleware.Authenticate(r.auth, auth.RoleOwner))
	r.Put("/api/v1/building-site/:id", buildingSiteController.UpdateAll, middleware.Authenticate(r.auth, auth.RoleOwner))
	r.Delete("/api/v1/building-site/:id", buildingSiteController.Delete, middleware.Authenticate(r.auth, auth.RoleOwner))

	// #workers
	r.Get("/api/v1/worker/list", workerController.GetList, middleware.Authenticate(r.auth, auth.RoleOwner))
	r.Get("/api/v1/worker/not-in-site/:site_id", workerController.GetListNotInSite, middleware.Authenticate(r.auth, auth.RoleOwner))
	r.Post("/api/v1/worker/create", workerController.Create, middleware.Authenticate(r.auth, auth.RoleOwner))
	r.Put("/api/v1/worker/:id", workerController.UpdateAll, middleware.Authenticate(r.auth, auth.RoleOwner))
	r.Post("/api/v1/worker/link-site", workerController.LinkSite, middleware.Authenticate(r.auth, auth.RoleOwner))
	r.Delete("/api/v1/worker/unlink-site/:site_id/:worker_id", workerController.UnlinkSite, middleware.Authenticate(r.auth, auth.RoleOwner))
	r.Post("/api/v1/worker/link-company", workerController.LinkCompany, middleware.Authenticate(r.auth, auth.RoleOwner))
	r.Delete("/api/v1/worker/:id", workerController.Delete, middleware.Authenticate(r.auth, auth.RoleOwner))

	// #companies
	r.Get("/api/v1/company/list", companyController.GetList, middleware.Authenticate(r.auth, auth.RoleOwner))
	r.Post("/api/v1/company/create", companyController.Create, middleware.Authenticate(r.auth, auth.RoleOwner))
	r.Put("/api/v1/company/:id", companyController.UpdateAll, middleware.Authenticate(r.auth, auth.RoleOwner))
	r.Delete("/api/v1/company/:id", companyController.Delete, middleware.Authenticate(r.auth, auth.RoleOwner))

	// #worker types
	r.Get("/api/v1/worker-type/list", workerTypeController.GetList, middleware.Authenticate(r.auth, auth.RoleOwner))
	r.Post("/api/v1/worker-type/create", workerTypeController.Create, middleware.Authenticate(r.auth, auth.RoleOwner))
	r.Delete("/api/v1/worker-type/:id", workerTypeController.Delete, middleware.Authenticate(r.auth, auth.RoleOwner))

	// #daily notes
	r.Get("/api/v1/daily-note/field", dailyNoteController.GetField, middleware.Authenticate(r.auth, auth.RoleOwner))
	r.Post("/api/v1/daily-note/field", dailyNoteController.UpsertField, middleware.Authenticate(r.auth, auth.RoleOwner))

	// #daily presences
	r.Get("/api/v1/daily-presence/list", dailyPresenceController.GetByDate, middleware.Authenticate(r.auth, auth.RoleOwner))
	r.Post("/api/v1/daily-presence/save", dailyPresenceController.Save, middleware.Authenticate(r.auth, auth.RoleOwner))
	r.Post("/api/v1/daily-presence/save-bulk", dailyPresenceController.SaveBulk, middleware.Authenticate(r.auth, auth.RoleOwner))

	// #journal
	r.Get("/api/v1/journal/:site_id/excel", journalController.ExportExcel, middleware.Authenticate(r.auth, auth.RoleOwner))
	r.Get("/api/v1/journal/:site_id/roster-pdf", journalController.ExportRosterPDF, middleware.Authenticate(r.auth, auth.RoleOwner))
	r.Get("/api/v1/journal/:site_id/qrcode", journalController.SiteQRCode, middleware.Authenticate(r.auth, auth.RoleOwner))

	return r.Run(r.port)
}

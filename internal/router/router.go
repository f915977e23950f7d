package router

import (
	"time"

	"staffportal/backend/foundation/web"
	"staffportal/backend/internal/auth"
	"staffportal/backend/internal/middleware"
	"staffportal/backend/internal/pkg/config"
	"staffportal/backend/internal/pkg/repository/postgresql"
	"staffportal/backend/internal/repository/postgres/adminconfig"
	"staffportal/backend/internal/repository/postgres/attendance"
	"staffportal/backend/internal/repository/postgres/employee"
	"staffportal/backend/internal/service/geocode"
	"staffportal/backend/internal/service/otp"
	"staffportal/backend/internal/service/payroll"

	"github.com/gin-contrib/cors"
	"github.com/redis/go-redis/v9"

	attendance_controller "staffportal/backend/internal/controller/http/v1/attendance"
	auth_controller "staffportal/backend/internal/controller/http/v1/auth"
	employee_controller "staffportal/backend/internal/controller/http/v1/employee"
	payroll_controller "staffportal/backend/internal/controller/http/v1/payroll"
)

type Router struct {
	*web.App
	postgresDB *postgresql.Database
	redisDB    *redis.Client
	auth       *auth.Auth
	cfg        *config.Config
}

func NewRouter(
	app *web.App,
	postgresDB *postgresql.Database,
	redisDB *redis.Client,
	a *auth.Auth,
	cfg *config.Config,
) *Router {
	return &Router{
		app,
		postgresDB,
		redisDB,
		a,
		cfg,
	}
}

func (r Router) Init() error {

	r.HandleMethodNotAllowed = true
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", r.cfg.BaseUrl},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	policy := payroll.Policy{
		WeeklyOffRule:   r.cfg.WeeklyOffRule,
		HalfDayCutoff:   r.cfg.HalfDayCutoff,
		CycleBoundary:   r.cfg.CycleBoundary,
		RequireLocation: r.cfg.RequireLocation,
	}

	// - postgresql
	employeePostgres := employee.NewRepository(r.postgresDB)
	attendancePostgres := attendance.NewRepository(r.postgresDB)
	adminConfigPostgres := adminconfig.NewRepository(r.postgresDB)

	// services
	geocoder := geocode.NewClient(r.cfg.GeocodeURL)
	otpService := otp.NewService(r.redisDB, otp.LogSender{})
	calculator := payroll.NewCalculator(employeePostgres, attendancePostgres, policy)

	// controller
	authController := auth_controller.NewController(adminConfigPostgres, employeePostgres, otpService, r.auth, r.cfg.AdminMobile)
	employeeController := employee_controller.NewController(employeePostgres, r.cfg.BaseUrl)
	attendanceController := attendance_controller.NewController(attendancePostgres, geocoder, policy)
	payrollController := payroll_controller.NewController(calculator)

	// #auth
	r.Post("/api/v1/sign-in", authController.SignIn)
	r.Post("/api/v1/employee/sign-in", authController.EmployeeSignIn)
	r.Post("/api/v1/admin/otp", authController.SendOtp)
	r.Post("/api/v1/admin/reset-password", authController.ResetPassword)

	// #employee
	r.Get("/api/v1/employee/list", employeeController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/employee/:id", employeeController.GetDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/employee/:id/qrcode", employeeController.GetQrCode, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/employee/create", employeeController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/employee/:id", employeeController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/employee/:id", employeeController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #attendance
	r.Post("/api/v1/attendance/punch", attendanceController.Punch, middleware.Authenticate(r.auth, auth.RoleEmployee))
	r.Get("/api/v1/attendance/list", attendanceController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/attendance/history", attendanceController.GetHistory, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleEmployee))
	r.Delete("/api/v1/attendance/:id", attendanceController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #payroll
	r.Get("/api/v1/payroll", payrollController.Get, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/payroll/export", payrollController.Export, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/payroll/payslip", payrollController.Payslip, middleware.Authenticate(r.auth, auth.RoleAdmin))

	return r.Run(r.cfg.Port)
}

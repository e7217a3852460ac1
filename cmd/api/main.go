package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/shalomhq/shiftboard-backend-go/internal/config"
	appHTTP "github.com/shalomhq/shiftboard-backend-go/internal/handler/http"
	"github.com/shalomhq/shiftboard-backend-go/internal/pkg/database"
	"github.com/shalomhq/shiftboard-backend-go/internal/pkg/jwt"
	"github.com/shalomhq/shiftboard-backend-go/internal/pkg/metrics"
	"github.com/shalomhq/shiftboard-backend-go/internal/repository/postgresql"
	authService "github.com/shalomhq/shiftboard-backend-go/internal/service/auth"
	claimService "github.com/shalomhq/shiftboard-backend-go/internal/service/claim"
	dashboardService "github.com/shalomhq/shiftboard-backend-go/internal/service/dashboard"
	employeeService "github.com/shalomhq/shiftboard-backend-go/internal/service/employee"
	requestService "github.com/shalomhq/shiftboard-backend-go/internal/service/request"
	scheduleService "github.com/shalomhq/shiftboard-backend-go/internal/service/schedule"
	shiftService "github.com/shalomhq/shiftboard-backend-go/internal/service/shift"
	unavailabilityService "github.com/shalomhq/shiftboard-backend-go/internal/service/unavailability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db, cfg.App.MigrationsDir); err != nil {
		log.Fatal("Error applying migrations: ", err)
	}

	metrics.Register()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	unavailRepo := postgresql.NewUnavailabilityRepository(db)
	requestRepo := postgresql.NewRequestRepository(db)
	claimRepo := postgresql.NewClaimRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)

	authSvc := authService.NewService(employeeRepo, jwtService)
	employeeSvc := employeeService.NewService(db, employeeRepo, scheduleRepo)
	shiftSvc := shiftService.NewService(shiftRepo)
	scheduleSvc := scheduleService.NewService(scheduleRepo, employeeRepo, unavailRepo)
	unavailSvc := unavailabilityService.NewService(unavailRepo, employeeRepo)
	requestSvc := requestService.NewService(db, requestRepo, scheduleRepo, employeeRepo)
	claimSvc := claimService.NewService(db, claimRepo, scheduleRepo)
	dashboardSvc := dashboardService.NewService(dashboardRepo)

	router := appHTTP.NewRouter(jwtService, cfg.App.FrontendURL, cfg.App.Env, appHTTP.Handlers{
		Auth:           appHTTP.NewAuthHandler(authSvc, employeeSvc, jwtService),
		Employee:       appHTTP.NewEmployeeHandler(employeeSvc),
		Shift:          appHTTP.NewShiftHandler(shiftSvc),
		Schedule:       appHTTP.NewScheduleHandler(scheduleSvc),
		Unavailability: appHTTP.NewUnavailabilityHandler(unavailSvc),
		Request:        appHTTP.NewRequestHandler(requestSvc),
		Claim:          appHTTP.NewClaimHandler(claimSvc),
		Dashboard:      appHTTP.NewDashboardHandler(dashboardSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

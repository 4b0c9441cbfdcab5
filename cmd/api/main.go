package main

import (
	"fmt"
	"net/http"

	"github.com/klfacil/erp-backend-go/internal/config"
	appHTTP "github.com/klfacil/erp-backend-go/internal/handler/http"
	"github.com/klfacil/erp-backend-go/internal/pkg/database"
	"github.com/klfacil/erp-backend-go/internal/pkg/export"
	"github.com/klfacil/erp-backend-go/internal/pkg/jwt"
	"github.com/klfacil/erp-backend-go/internal/repository/postgresql"
	punchService "github.com/klfacil/erp-backend-go/internal/service/punch"
	timesheetService "github.com/klfacil/erp-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	punchRepo := postgresql.NewPunchEventRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	xlsxRenderer := export.NewXLSXRenderer()

	punchSvc := punchService.NewPunchService(db, punchRepo)
	timesheetSvc := timesheetService.NewTimesheetService(
		punchRepo,
		employeeRepo,
		cfg.Location(),
		xlsxRenderer,
	)

	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)

	router := appHTTP.NewRouter(
		JWTService.JWTAuth(),
		cfg.Punch.DeviceKeyHash,
		punchHandler,
		timesheetHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

package main

import (
	"fmt"
	"net/http"

	"github.com/talentreach/outreach-backend-go/internal/config"
	appHTTP "github.com/talentreach/outreach-backend-go/internal/handler/http"
	"github.com/talentreach/outreach-backend-go/internal/pkg/database"
	"github.com/talentreach/outreach-backend-go/internal/pkg/jwt"
	"github.com/talentreach/outreach-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/talentreach/outreach-backend-go/internal/service/auth"
	serviceCompany "github.com/talentreach/outreach-backend-go/internal/service/company"
	serviceHR "github.com/talentreach/outreach-backend-go/internal/service/hr"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	companyRepo := postgresql.NewCompanyRepository(db)
	recordRepo := postgresql.NewRecordRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authService := serviceAuth.NewAuthService(cfg.Admin, JWTService)
	companyService := serviceCompany.NewCompanyService(db, companyRepo)
	recordService := serviceHR.NewRecordService(db, recordRepo, companyService)

	authHandler := appHTTP.NewAuthHandler(authService)
	companyHandler := appHTTP.NewCompanyHandler(companyService)
	recordHandler := appHTTP.NewRecordHandler(recordService)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		companyHandler,
		recordHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

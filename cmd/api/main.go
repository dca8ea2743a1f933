package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/shirayuki-snow/snowschool-backend-go/internal/config"
	appHTTP "github.com/shirayuki-snow/snowschool-backend-go/internal/handler/http"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/pkg/database"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/pkg/jwt"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/pkg/oauth"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/repository/postgresql"
	authService "github.com/shirayuki-snow/snowschool-backend-go/internal/service/auth"
	instructorService "github.com/shirayuki-snow/snowschool-backend-go/internal/service/instructor"
	invitationService "github.com/shirayuki-snow/snowschool-backend-go/internal/service/invitation"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/service/master"
	shiftService "github.com/shirayuki-snow/snowschool-backend-go/internal/service/shift"
	userService "github.com/shirayuki-snow/snowschool-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	if err := database.ApplyMigrations(cfg.MigrationURL()); err != nil {
		log.Fatal("Error applying migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	tokenRepo := postgresql.NewInvitationRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	certificationRepo := postgresql.NewCertificationRepository(db)
	shiftTypeRepo := postgresql.NewShiftTypeRepository(db)
	instructorRepo := postgresql.NewInstructorRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.SessionExpiration)
	lineService := oauth.NewLineService(
		cfg.OAuth2Line.ChannelID,
		cfg.OAuth2Line.ChannelSecret,
		cfg.OAuth2Line.RedirectURL,
		cfg.OAuth2Line.Scopes,
	)

	tokenService := invitationService.NewTokenService(db, tokenRepo, userRepo, cfg.App.FrontendURL)
	authSvc := authService.NewAuthService(db, userRepo, tokenService, tokenRepo)
	departmentService := master.NewDepartmentService(departmentRepo)
	certificationService := master.NewCertificationService(certificationRepo)
	shiftTypeService := master.NewShiftTypeService(shiftTypeRepo, certificationRepo)
	instructorSvc := instructorService.NewInstructorService(db, instructorRepo, departmentRepo, userRepo)
	shiftSvc := shiftService.NewShiftService(db, shiftRepo, shiftTypeRepo, departmentRepo, instructorRepo)
	userSvc := userService.NewUserService(userRepo)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc, lineService, cfg.App.FrontendURL),
		Invitation: appHTTP.NewInvitationHandler(tokenService),
		Master:     appHTTP.NewMasterHandler(departmentService, certificationService, shiftTypeService),
		Instructor: appHTTP.NewInstructorHandler(instructorSvc),
		Shift:      appHTTP.NewShiftHandler(shiftSvc),
		User:       appHTTP.NewUserHandler(userSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}

package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/config"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/infra/queue"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/api/rest/handlers"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/api/rest/middleware"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/domain"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/helper"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/repository"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/services"
	cldpkg "github.com/sudarshan-gautam/placement-tracking-app-sub002/pkg/cloudinary"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.BaseURL,
		AllowHeaders: "Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	// ---------- DB ----------
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	// ---------- MIGRATION + SEED ----------
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Role{},
		&domain.UserRole{},
		&domain.Qualification{},
		&domain.Session{},
		&domain.Activity{},
		&domain.JobPost{},
		&domain.Application{},
		&domain.ProfileVerification{},
		&domain.MentorAssignment{},
		&domain.Conversation{},
		&domain.Message{},
		&domain.AuditLog{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	seedRoles(db)

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)

	cld, err := cldpkg.New()
	if err != nil {
		log.Fatalf("cloudinary init error: %v", err)
	}
	up := cldpkg.NewCloudinaryUploader(cld)

	authHelper := helper.SetupAuth(cfg.AccessSecret)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	userRoleRepo := repository.NewUserRoleRepository(db)
	verificationRepo := repository.NewVerificationRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	qualRepo := repository.NewQualificationRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	profileRepo := repository.NewProfileVerificationRepository(db)
	jobRepo := repository.NewJobPostRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// ---------- Services ----------
	userSvc := services.NewUserService(userRepo, roleRepo, userRoleRepo, kafkaProducer)
	verificationSvc := services.NewVerificationService(verificationRepo, auditRepo, kafkaProducer)
	assignmentSvc := services.NewAssignmentService(assignmentRepo, userRepo, userRoleRepo, auditRepo, kafkaProducer)
	submissionSvc := services.NewSubmissionService(qualRepo, sessionRepo, activityRepo, applicationRepo, profileRepo, jobRepo)
	messageSvc := services.NewMessageService(messageRepo, userRepo, kafkaProducer)

	// ---------- Handlers ----------
	authHandler := handlers.NewAuthHandler(userSvc, authHelper)
	verificationHandler := handlers.NewVerificationHandler(verificationSvc)
	mentorHandler := handlers.NewMentorHandler(assignmentSvc)
	submissionHandler := handlers.NewSubmissionHandler(submissionSvc)
	messageHandler := handlers.NewMessageHandler(messageSvc)
	uploadHandler := handlers.NewUploadHandler(up)

	SetupRoutes(app, authHelper, userSvc,
		authHandler, verificationHandler, mentorHandler,
		submissionHandler, messageHandler, uploadHandler)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}

func SetupRoutes(
	app *fiber.App,
	authHelper helper.Auth,
	userSvc services.UserService,
	authHandler *handlers.AuthHandler,
	verificationHandler *handlers.VerificationHandler,
	mentorHandler *handlers.MentorHandler,
	submissionHandler *handlers.SubmissionHandler,
	messageHandler *handlers.MessageHandler,
	uploadHandler *handlers.UploadHandler,
) {
	api := app.Group("/api")

	// Auth (open)
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Everything below requires a bearer token
	secured := api.Group("/", middleware.AuthMiddleware(authHelper))

	secured.Get("/auth/me", authHandler.Me)
	secured.Patch("/auth/me", authHandler.UpdateMe)

	// Verification queue (mentor/admin)
	review := secured.Group("/verifications", middleware.MentorOrAdmin(userSvc))
	review.Get("/", verificationHandler.ListPending)
	review.Patch("/", verificationHandler.SetStatus)
	review.Get("/:type/:id/history", verificationHandler.History)

	// Mentor-student assignment
	assignments := secured.Group("/mentor-assignments")
	assignments.Post("/", middleware.AdminOnly(userSvc), mentorHandler.Assign)
	assignments.Delete("/:studentID", middleware.AdminOnly(userSvc), mentorHandler.Unassign)
	assignments.Get("/mentor/:mentorID", middleware.MentorOrAdmin(userSvc), mentorHandler.ListStudents)
	assignments.Get("/student/:studentID", mentorHandler.GetMentor)

	// Submissions
	secured.Post("/qualifications", submissionHandler.CreateQualification)
	secured.Get("/qualifications", submissionHandler.ListQualifications)
	secured.Post("/sessions", submissionHandler.CreateSession)
	secured.Get("/sessions", submissionHandler.ListSessions)
	secured.Post("/activities", submissionHandler.CreateActivity)
	secured.Get("/activities", submissionHandler.ListActivities)
	secured.Post("/applications", submissionHandler.CreateApplication)
	secured.Get("/applications", submissionHandler.ListApplications)
	secured.Post("/profile-verifications", submissionHandler.CreateProfileVerification)
	secured.Get("/profile-verifications", submissionHandler.ListProfileVerifications)
	secured.Post("/:type/:id/resubmit", submissionHandler.Resubmit)

	// Job posts
	secured.Post("/job-posts", middleware.MentorOrAdmin(userSvc), submissionHandler.CreateJobPost)
	secured.Get("/job-posts", submissionHandler.ListJobPosts)

	// Messaging
	secured.Post("/conversations", messageHandler.OpenConversation)
	secured.Get("/conversations", messageHandler.ListConversations)
	secured.Post("/conversations/:key/messages", messageHandler.SendMessage)
	secured.Get("/conversations/:key/messages", messageHandler.ListMessages)

	// Uploads + dashboard
	secured.Post("/uploads/evidence", uploadHandler.UploadEvidence)
	secured.Get("/dashboard", verificationHandler.Dashboard)
}

func seedRoles(db *gorm.DB) {
	codes := []string{domain.RoleAdmin, domain.RoleMentor, domain.RoleStudent}

	for _, code := range codes {
		var r domain.Role
		err := db.Where("code = ?", code).First(&r).Error
		if err == gorm.ErrRecordNotFound {
			_ = db.Create(&domain.Role{
				Code: code,
				Name: code,
			}).Error
		}
	}
}

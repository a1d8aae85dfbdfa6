package main

import (
	"context"

	"ca-office-backend/config"
	"ca-office-backend/middleware"
	"ca-office-backend/seeds"
	"ca-office-backend/token"
	"ca-office-backend/utils"

	// Repositories
	client_repositories "ca-office-backend/clients/repositories"
	employee_repositories "ca-office-backend/employees/repositories"
	engagement_repositories "ca-office-backend/engagements/repositories"
	firm_repositories "ca-office-backend/firms/repositories"
	invoice_repositories "ca-office-backend/invoices/repositories"
	leave_repositories "ca-office-backend/leaves/repositories"
	timesheet_repositories "ca-office-backend/timesheets/repositories"
	todo_repositories "ca-office-backend/todos/repositories"

	// Services
	engagement_services "ca-office-backend/engagements/services"
	todo_services "ca-office-backend/todos/services"

	// Routes
	client_routes "ca-office-backend/clients/routes"
	employee_routes "ca-office-backend/employees/routes"
	engagement_routes "ca-office-backend/engagements/routes"
	firm_routes "ca-office-backend/firms/routes"
	invoice_routes "ca-office-backend/invoices/routes"
	leave_routes "ca-office-backend/leaves/routes"
	timesheet_routes "ca-office-backend/timesheets/routes"
	todo_routes "ca-office-backend/todos/routes"

	// Bleve
	bleveControllers "ca-office-backend/bleve/controllers"
	bleveRepositories "ca-office-backend/bleve/repositories"
	bleveRoutes "ca-office-backend/bleve/routes"
	bleveServices "ca-office-backend/bleve/services"

	// Background tasks
	"ca-office-backend/internal/tasks"

	// WebSocket
	"ca-office-backend/websocket"

	"encoding/gob"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	config.InitLogger()

	err := godotenv.Load(".env")
	if err != nil {
		config.Logger.Fatal("Error loading .env file", zap.Error(err))
	}
	gob.Register(uuid.UUID{})

	app := fiber.New()

	middleware.InitCors(app)

	db := config.ConfigureDatabase()
	if err := seeds.SeedAll(db); err != nil {
		config.Logger.Fatal("Database seeding failed", zap.Error(err))
	}
	port := config.GetEnv("PORT")
	ctx := context.Background()

	redisAddr := config.GetEnv("REDIS_ADDRESS")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
		config.Logger.Warn("REDIS_ADDRESS not set, using default: localhost:6379")
	}

	redisClient := config.InitRedisServer(ctx)

	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     redisAddr,
		Password: config.GetEnv("REDIS_PASSWORD"),
		DB:       0,
	}

	asynqClient := asynq.NewClient(asynqRedisOpt)
	defer asynqClient.Close()

	// Email worker shares the asynq Redis connection.
	worker := tasks.StartWorker(asynqRedisOpt, db)
	defer worker.Shutdown()

	tokenKey := config.GetEnv("TOKEN_SYMMETRIC_KEY")
	tokenMaker, err := token.NewPasetoMaker(tokenKey)
	if err != nil {
		config.Logger.Fatal("Cannot create token maker", zap.Error(err))
	}

	indexPath := config.GetEnv("BLEVE_INDEX_PATH")
	if indexPath == "" {
		indexPath = "./bleve_data"
		config.Logger.Warn("BLEVE_INDEX_PATH not set, using default: ./bleve_data")
	}

	utils.InitializeMailer()
	if utils.GetMailer() == nil {
		config.Logger.Fatal("Mailer not initialized")
	}

	wsHub := websocket.NewHub()
	go wsHub.Run()

	app.Static("/public", "./public")

	appContext := &middleware.AppContext{
		PasetoMaker: tokenMaker,
		Ctx:         ctx,
		RedisClient: redisClient,
	}

	// Repositories
	bleveIndexingService := bleveServices.NewIndexingService(config.Logger, indexPath)
	_, bleveInterfaceRepo := bleveRepositories.NewBleveRepository(bleveIndexingService)
	employeeRepo := employee_repositories.NewEmployeeRepository(db)
	firmRepo := firm_repositories.NewFirmRepository(db)
	clientRepo := client_repositories.NewClientRepository(db)
	engagementRepo := engagement_repositories.NewEngagementRepository(db)
	invoiceRepo := invoice_repositories.NewInvoiceRepository(db)
	timesheetRepo := timesheet_repositories.NewTimesheetRepository(db)
	leaveRepo := leave_repositories.NewLeaveRepository(db)
	todoRepo := todo_repositories.NewTodoRepository(db)
	notificationRepo := todo_repositories.NewNotificationRepository(db)

	// Services
	notifier := todo_services.NewNotifier(notificationRepo, employeeRepo, wsHub)

	// Routes
	employee_routes.EmployeeInitRoutes(app, employeeRepo, ctx, redisClient, tokenMaker, bleveInterfaceRepo, db)
	firm_routes.FirmInitRoutes(app, firmRepo, appContext)
	client_routes.ClientInitRoutes(app, clientRepo, employeeRepo, firmRepo, ctx, redisClient, asynqClient, tokenMaker, bleveInterfaceRepo, db)
	engagement_routes.EngagementInitRoutes(app, engagementRepo, clientRepo, employeeRepo, ctx, appContext, db)
	invoice_routes.InvoiceInitRoutes(app, invoiceRepo, clientRepo, firmRepo, ctx, appContext, asynqClient, db)
	timesheet_routes.TimesheetInitRoutes(app, timesheetRepo, employeeRepo, engagementRepo, clientRepo, firmRepo, invoiceRepo, ctx, appContext, db)
	leave_routes.LeaveInitRoutes(app, leaveRepo, employeeRepo, notifier, ctx, appContext, db)
	todo_routes.TodoInitRoutes(app, todoRepo, notificationRepo, employeeRepo, notifier, ctx, appContext, db)

	// WebSocket handler with token validation
	wsHandler := websocket.NewWsHandler(wsHub, tokenMaker)
	app.Get("/ws", wsHandler.HandleWebSocket)
	config.Logger.Info("WebSocket endpoint registered at /ws")

	// Bleve routes
	bleveController := bleveControllers.NewSearchController(bleveInterfaceRepo)
	bleveRoutes.InitBleveRoutes(app, bleveController)

	if err := utils.InitializeDateLocation(); err != nil {
		config.Logger.Fatal("Failed to initialize date location", zap.Error(err))
	}

	// Schedulers
	engagementCron := engagement_services.StartEngagementScheduler(db, engagementRepo)
	defer engagementCron.Stop()
	reminderCron := todo_services.StartReminderScheduler(todoRepo, notifier)
	defer reminderCron.Stop()

	config.Logger.Info("Server starting", zap.String("port", port))
	config.Logger.Fatal("Server failed", zap.String("port", port), zap.Error(app.Listen(":"+port)))
}

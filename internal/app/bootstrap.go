package app

import (
	"backend/internal/app/activity"
	"backend/internal/app/archive"
	"backend/internal/app/comment"
	"backend/internal/app/dashboard"
	"backend/internal/app/health"
	"backend/internal/app/kanban"
	"backend/internal/app/member"
	"backend/internal/app/post"
	"backend/internal/app/project"
	"backend/internal/app/quicklink"
	"backend/internal/app/schedule"
	"backend/internal/app/task"
	"backend/internal/config"
	"backend/internal/db"
	"backend/internal/db/seeder"
	"backend/internal/gateways/websocket"
	"backend/internal/providers/redis"
	"backend/internal/router"
	"backend/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Application struct {
	Router *router.Router
	DB     *gorm.DB
}

func Bootstrap(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	dbConn, err := db.Connect(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn, logger); err != nil {
		return nil, err
	}

	seed := seeder.NewSeeder(dbConn, logger)
	if err := seed.Seed(); err != nil {
		logger.Warn("Failed to run seeders", zap.Error(err))
	}

	redisProvider := redis.NewRedisProvider(cfg.RedisURL, logger, cfg.RedisTTL)
	eventBus := utils.NewEventBus()

	memberRepo := member.NewRepository(dbConn)
	taskRepo := task.NewRepository(dbConn)
	projectRepo := project.NewRepository(dbConn)
	commentRepo := comment.NewRepository(dbConn)
	postRepo := post.NewRepository(dbConn)
	archiveRepo := archive.NewRepository(dbConn)
	scheduleRepo := schedule.NewRepository(dbConn)
	activityRepo := activity.NewRepository(dbConn)
	quicklinkRepo := quicklink.NewRepository(dbConn)

	activityService := activity.NewService(activityRepo, logger)
	commentService := comment.NewService(commentRepo)
	taskService := task.NewService(taskRepo, commentService, activityService, eventBus, logger)
	memberService := member.NewService(memberRepo, taskRepo, activityService, eventBus, cfg.SessionTTL, logger)
	projectService := project.NewService(projectRepo, taskService, activityService, eventBus, logger)
	postService := post.NewService(postRepo, activityService, eventBus, logger)
	archiveService := archive.NewService(archiveRepo, activityService, eventBus, logger)
	scheduleService := schedule.NewService(scheduleRepo, memberService, taskService, activityService, eventBus, logger)
	quicklinkService := quicklink.NewService(quicklinkRepo)
	kanbanService := kanban.NewService(taskService, logger)

	hub := websocket.NewHub(eventBus, logger)
	go hub.Run()

	dashboardService := dashboard.NewService(
		taskService,
		memberService,
		activityService,
		quicklinkService,
		hub,
		redisProvider,
		cfg.DashboardTTL,
		eventBus,
		logger,
	)

	healthHandler := health.NewHandler(&utils.HealthChecker{
		DB:    dbConn,
		Redis: redisProvider.Client,
	})

	r := router.NewRouter(logger, memberService)

	r.RegisterHealthRoutes(healthHandler)
	r.RegisterWebSocketRoutes(hub, memberService)
	r.RegisterMemberRoutes(member.NewHandler(memberService))
	r.RegisterTaskRoutes(task.NewHandler(taskService))
	r.RegisterKanbanRoutes(kanban.NewHandler(kanbanService))
	r.RegisterScheduleRoutes(schedule.NewHandler(scheduleService))
	r.RegisterProjectRoutes(project.NewHandler(projectService))
	r.RegisterCommentRoutes(comment.NewHandler(commentService))
	r.RegisterPostRoutes(post.NewHandler(postService))
	r.RegisterArchiveRoutes(archive.NewHandler(archiveService))
	r.RegisterQuickLinkRoutes(quicklink.NewHandler(quicklinkService))
	r.RegisterDashboardRoutes(dashboard.NewHandler(dashboardService))
	r.RegisterSwaggerRoutes()

	return &Application{
		Router: r,
		DB:     dbConn,
	}, nil
}

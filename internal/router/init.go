package router

import (
	app "github.com/webcraft-academy/elearn-api/internal/application"
	"github.com/webcraft-academy/elearn-api/internal/container"
	pginfra "github.com/webcraft-academy/elearn-api/internal/infrastructure/postgres"
	handlers "github.com/webcraft-academy/elearn-api/internal/interface/http"
	"github.com/webcraft-academy/elearn-api/internal/router/modules"
)

type Deps struct {
	Users   *handlers.UserHandler
	Carts   *handlers.CartHandler
	Courses *handlers.CourseHandler
	Jobs    *handlers.JobHandler
}

func buildDeps() Deps {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	courseRepo := pginfra.NewCourseRepository(pool)
	cartRepo := pginfra.NewCartRepository(pool)
	jobRepo := pginfra.NewJobRepository(pool)

	userSvc := app.NewUserService(
		userRepo,
		container.GetJWT(),
		container.GetGCS(),
		cfg.GCSBucket,
		container.GetRedis(),
		logger,
		container.GetNotifier(),
		cfg.AppName,
		cfg.ResetCodeTTL,
	)
	cartSvc := app.NewCartService(userRepo, courseRepo, cartRepo, logger)
	courseSvc := app.NewCourseService(
		courseRepo,
		container.GetRedis(),
		container.GetES(),
		cfg.ESCoursesIndex,
		container.GetGCS(),
		cfg.GCSBucket,
		logger,
		cfg.CourseCacheTTL,
	)
	jobSvc := app.NewJobService(jobRepo, logger)

	return Deps{
		Users:   handlers.NewUserHandler(userSvc, logger),
		Carts:   handlers.NewCartHandler(cartSvc, logger),
		Courses: handlers.NewCourseHandler(courseSvc, logger),
		Jobs:    handlers.NewJobHandler(jobSvc, logger),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	deps := buildDeps()
	jwt := container.GetJWT()

	r.Add(modules.NewUserModule(deps.Users, jwt))
	r.Add(modules.NewCartModule(deps.Carts, jwt))
	r.Add(modules.NewCourseModule(deps.Courses, jwt))
	r.Add(modules.NewJobModule(deps.Jobs, jwt))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}

package background

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"homekitchen/internal/services"
)

// JobScheduler runs periodic background jobs.
type JobScheduler struct {
	scheduler   gocron.Scheduler
	menuService services.MenuService
}

func NewJobScheduler(menuService services.MenuService) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	js := &JobScheduler{
		scheduler:   scheduler,
		menuService: menuService,
	}
	js.registerJobs()

	return js, nil
}

func (js *JobScheduler) registerJobs() {
	// Menu cache warmer, keeps the read path hot between requests.
	_, err := js.scheduler.NewJob(
		gocron.DurationJob(15*time.Minute),
		gocron.NewTask(js.refreshMenuCache),
		gocron.WithName("menu-cache-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("Failed to create menu cache refresh job: %v", err)
	}
}

func (js *JobScheduler) refreshMenuCache() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := js.menuService.RefreshCache(ctx); err != nil {
		log.Printf("Menu cache refresh failed: %v", err)
	}
}

func (js *JobScheduler) Start() {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
}

func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

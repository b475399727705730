package jobs

import (
	"vehiclerental-backend/internal/config"
	"vehiclerental-backend/internal/logger"
	"vehiclerental-backend/internal/repository"
	"vehiclerental-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
	emailSvc    service.EmailService
	config      *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(bookingRepo repository.BookingRepository, userRepo repository.UserRepository, emailSvc service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
		config:      cfg,
	}
}

// Config returns the application configuration the runner was built with
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.SendOverdueReport()
}

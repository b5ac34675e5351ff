// File: internal/jobs/catalog_integrity.go
package jobs

import (
	"context"
	"fmt"
	"time"

	"music_catalog_backend/internal/config"
	"music_catalog_backend/internal/song"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// CatalogIntegrityJob periodically counts songs whose artist or genre
// references no longer resolve. References are never enforced or repaired;
// this job only reports them for operators.
type CatalogIntegrityJob struct {
	songs         song.Repository
	logger        *zap.Logger
	cfg           *config.Config
	cronScheduler *cron.Cron
}

// NewCatalogIntegrityJob creates a new CatalogIntegrityJob.
func NewCatalogIntegrityJob(
	songs song.Repository,
	logger *zap.Logger,
	cfg *config.Config,
) *CatalogIntegrityJob {
	scheduler := cron.New(cron.WithLogger(NewCronLogger(logger.Named("cron"))))

	return &CatalogIntegrityJob{
		songs:         songs,
		logger:        logger.Named("CatalogIntegrityJob"),
		cfg:           cfg,
		cronScheduler: scheduler,
	}
}

// SetupAndStart schedules and starts the cron job.
func (j *CatalogIntegrityJob) SetupAndStart() error {
	jobSpec := j.cfg.CatalogIntegrityJobSchedule
	if jobSpec == "" {
		j.logger.Warn("Catalog integrity job schedule not defined (CATALOG_INTEGRITY_JOB_SCHEDULE). Job will not run.")
		return nil
	}

	jobID, err := j.cronScheduler.AddFunc(jobSpec, j.runJob)
	if err != nil {
		j.logger.Error("Failed to schedule catalog integrity job", zap.String("spec", jobSpec), zap.Error(err))
		return err
	}

	j.logger.Info("Catalog integrity job scheduled", zap.String("spec", jobSpec), zap.Any("jobID", jobID))
	j.cronScheduler.Start()
	return nil
}

// runJob is the actual work performed by the cron job.
func (j *CatalogIntegrityJob) runJob() {
	j.logger.Info("Starting catalog integrity report run...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	orphanedByArtist, err := j.songs.CountOrphanedByArtist(ctx)
	if err != nil {
		j.logger.Error("Catalog integrity report failed counting orphaned artist references", zap.Error(err))
		return
	}

	orphanedByGenre, err := j.songs.CountOrphanedByGenre(ctx)
	if err != nil {
		j.logger.Error("Catalog integrity report failed counting orphaned genre references", zap.Error(err))
		return
	}

	j.logger.Info("Catalog integrity report completed",
		zap.Int64("songs_with_missing_artist", orphanedByArtist),
		zap.Int64("songs_with_missing_genre", orphanedByGenre),
	)
}

// Stop gracefully stops the cron scheduler.
func (j *CatalogIntegrityJob) Stop() {
	if j.cronScheduler != nil {
		j.logger.Info("Stopping catalog integrity job scheduler...")
		stopCtx := j.cronScheduler.Stop()
		select {
		case <-stopCtx.Done():
			j.logger.Info("Catalog integrity job scheduler stopped gracefully.")
		case <-time.After(10 * time.Second):
			j.logger.Warn("Catalog integrity job scheduler stop timed out.")
		}
	}
}

// --- Cron Logger Adapter ---

// cronLogger adapts zap.Logger to the cron.Logger interface.
type cronLogger struct {
	zl *zap.Logger
}

// NewCronLogger creates a new cronLogger.
func NewCronLogger(zl *zap.Logger) cron.Logger {
	return &cronLogger{zl: zl}
}

// Info logs routine messages from cron.
func (cl *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	fields := cl.parseKeysAndValues(keysAndValues...)
	cl.zl.Info(msg, fields...)
}

// Error logs error messages from cron.
func (cl *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := cl.parseKeysAndValues(keysAndValues...)
	fields = append(fields, zap.Error(err))
	cl.zl.Error(msg, fields...)
}

func (cl *cronLogger) parseKeysAndValues(keysAndValues ...interface{}) []zap.Field {
	var fields []zap.Field
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), keysAndValues[i+1]))
		} else {
			fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), "MISSING_VALUE"))
		}
	}
	return fields
}

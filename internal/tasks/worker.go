package tasks

import (
	"ca-office-backend/config"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StartWorker runs the asynq server in a background goroutine. Email
// delivery is retried by asynq with its default backoff.
func StartWorker(redisOpt asynq.RedisClientOpt, db *gorm.DB) *asynq.Server {
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 5,
		Queues: map[string]int{
			"default": 5,
		},
	})

	handler := NewEmailTaskHandler(db)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeImportReportEmail, handler.HandleImportReportEmail)
	mux.HandleFunc(TypeInvoiceEmail, handler.HandleInvoiceEmail)

	go func() {
		if err := srv.Run(mux); err != nil {
			config.Logger.Error("Asynq worker stopped", zap.Error(err))
		}
	}()

	return srv
}

package finance

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"salonify/config"
)

// InitSettlementWorker runs the async settlement worker in background.
func InitSettlementWorker(settler *Settler) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"finance": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingSettlement, handleSettlementTask(settler))

	// Start async worker with retry logic
	go func() {
		log.Println("[SettlementWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SettlementWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SettlementWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleSettlementTask(settler *Settler) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p SettlementPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[SettlementWorker] invalid payload: %v", err)
			return err
		}
		if err := settler.Settle(ctx, p); err != nil {
			log.Printf("[SettlementWorker] settlement failed for appointment %s: %v", p.AppointmentID, err)
			return err
		}
		return nil
	}
}

// NewQueueClient constructs the asynq client used to enqueue settlements.
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
}

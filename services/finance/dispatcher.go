package finance

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"salonify/utils"
)

// Dispatcher hands a leg's financial side effects off for processing. Once
// an appointment is persisted its settlement is fire-and-forget: a dispatch
// failure is logged and reconciled later, never rolled back into the
// calendar.
type Dispatcher interface {
	DispatchSettlement(ctx context.Context, p SettlementPayload) error
}

// AsynqDispatcher enqueues settlements onto the finance queue.
type AsynqDispatcher struct {
	Client *asynq.Client
}

func NewAsynqDispatcher(client *asynq.Client) *AsynqDispatcher {
	return &AsynqDispatcher{Client: client}
}

func (d *AsynqDispatcher) DispatchSettlement(ctx context.Context, p SettlementPayload) error {
	task, opts, err := NewSettlementTask(p)
	if err != nil {
		return fmt.Errorf("failed to build settlement task: %w", err)
	}
	info, err := d.Client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue settlement: %w", err)
	}
	utils.GetLogger().Debug("settlement enqueued",
		zap.String("taskId", info.ID),
		zap.String("appointmentId", p.AppointmentID))
	return nil
}

// SyncDispatcher settles inline. Single-process deployments without a queue
// broker use it; so do tests.
type SyncDispatcher struct {
	Settler *Settler
}

func (d *SyncDispatcher) DispatchSettlement(ctx context.Context, p SettlementPayload) error {
	return d.Settler.Settle(ctx, p)
}

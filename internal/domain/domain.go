package domain

import (
	"context"
	"io"
)

type GenerationStatus string

const (
	GenerationCreated  GenerationStatus = "created"
	GenerationExisting GenerationStatus = "existing"
)

// GenerationState is the lifecycle of a username's snapshot generation.
type GenerationState string

const (
	StateUnknown     GenerationState = "UNKNOWN"
	StateFetching    GenerationState = "FETCHING"
	StateAggregating GenerationState = "AGGREGATING"
	StatePersisted   GenerationState = "PERSISTED"
	StateFailed      GenerationState = "FAILED"
)

type GenerationResult struct {
	Status   GenerationStatus
	Snapshot *StatsDTO
}

type PaymentOutcome string

const (
	PaymentSupporterAdded     PaymentOutcome = "supporter_added"
	PaymentAlreadyProcessed   PaymentOutcome = "already_processed"
	PaymentProductNotMatching PaymentOutcome = "product_not_matching"
	PaymentEventIgnored       PaymentOutcome = "event_ignored"
)

type StatsService interface {
	GetStats(ctx context.Context, username string) (*StatsDTO, error)
	GenerateStats(ctx context.Context, username string) (*GenerationResult, error)
	GetAllUsers(ctx context.Context) ([]AllUserDTO, error)
	GetTopUsers(ctx context.Context) ([]LeaderboardEntry, error)
	RefreshLeaderboard(ctx context.Context) error
}

type SupporterService interface {
	RecordPayment(ctx context.Context, payment Payment) (PaymentOutcome, error)
	ListPublicSupporters(ctx context.Context, limit, offset int) (*SupportersDTO, error)
	GetAggregate(ctx context.Context) (*SupporterAggregate, error)
}

type InsightService interface {
	StreamInsights(ctx context.Context, username string, w io.Writer) error
}

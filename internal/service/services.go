package service

import (
	"log/slog"

	redisx "github.com/kirinyoku/crew-go/internal/redis"
	postgres "github.com/kirinyoku/crew-go/internal/repository/postgres"
	redis "github.com/kirinyoku/crew-go/internal/repository/redis"
	"github.com/kirinyoku/crew-go/internal/service/admin"
	"github.com/kirinyoku/crew-go/internal/service/assignment"
	"github.com/kirinyoku/crew-go/internal/service/autoassign"
	"github.com/kirinyoku/crew-go/internal/service/booking"
	"github.com/kirinyoku/crew-go/internal/service/query"
	"github.com/kirinyoku/crew-go/internal/service/shift"
)

type Services struct {
	Assignment *assignment.Service
	AutoAssign *autoassign.Service
	Booking    *booking.Service
	Shift      *shift.Service
	Query      *query.Service
	Admin      *admin.Service
}

type Config struct {
	Query      query.Config
	AutoAssign autoassign.Config
}

func NewServices(
	store *postgres.Store,
	cache *redis.Cache,
	pubsub *redisx.EventsPubSub,
	limiter *redis.SlidingWindowLimiter,
	matcher autoassign.Matcher,
	logger *slog.Logger,
	cfg Config,
) *Services {
	assignSvc := assignment.New(store, cache, pubsub, limiter)

	return &Services{
		Assignment: assignSvc,
		AutoAssign: autoassign.New(
			store.Events(),
			store.Assignments(),
			matcher,
			assignSvc,
			logger,
			cfg.AutoAssign,
		),
		Booking: booking.New(store, cache, pubsub),
		Shift:   shift.New(store),
		Query:   query.New(store, cache, cfg.Query),
		Admin:   admin.New(store, cache, pubsub),
	}
}

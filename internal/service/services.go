package service

import (
	postgres "github.com/fashionistas/fashionistas-api/internal/repository/postgres"
	redis "github.com/fashionistas/fashionistas-api/internal/repository/redis"
	"github.com/fashionistas/fashionistas-api/internal/service/applications"
	"github.com/fashionistas/fashionistas-api/internal/service/events"
	"github.com/fashionistas/fashionistas-api/internal/service/query"
	"github.com/fashionistas/fashionistas-api/internal/service/registration"
	"github.com/fashionistas/fashionistas-api/internal/service/sponsor"
	"github.com/fashionistas/fashionistas-api/internal/service/tickets"
)

type Services struct {
	Events        *events.Service
	Registrations *registration.Service
	Tickets       *tickets.Service
	Sponsors      *sponsor.Service
	Applications  *applications.Service
	Query         *query.Service
}

type Config struct {
	Query query.Config
}

func NewServices(
	store *postgres.Store,
	cache *redis.Cache,
	pubsub *redis.EventsPubSub,
	cfg Config,
) *Services {
	return &Services{
		Events:        events.New(store, cache, pubsub),
		Registrations: registration.New(store, cache, pubsub),
		Tickets:       tickets.New(store, cache, pubsub),
		Sponsors:      sponsor.New(store),
		Applications:  applications.New(store),
		Query:         query.New(store, cache, cfg.Query),
	}
}

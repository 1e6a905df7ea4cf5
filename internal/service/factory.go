package service

import (
	"pathway.app/server/internal/audit"
	"pathway.app/server/internal/store"
)

// Services bundles the service layer for wiring into the HTTP router
// and the realtime router.
type Services struct {
	requests  RequestService
	messages  MessageService
	providers ProviderService
	users     UserService
}

type ServicesConfig struct {
	Stores   *store.Stores
	TxRunner TxRunner
	Audit    audit.Recorder
}

func NewServices(cfg ServicesConfig) *Services {
	return &Services{
		requests: NewRequestService(
			cfg.Stores.Requests(),
			cfg.Stores.Conversations(),
			cfg.TxRunner,
			cfg.Audit,
		),
		messages: NewMessageService(
			cfg.Stores.Conversations(),
			cfg.Stores.Messages(),
			cfg.TxRunner,
			cfg.Audit,
		),
		providers: NewProviderService(cfg.Stores.Providers()),
		users:     NewUserService(cfg.Stores.Users()),
	}
}

func (s *Services) Requests() RequestService {
	return s.requests
}

func (s *Services) Messages() MessageService {
	return s.messages
}

func (s *Services) Providers() ProviderService {
	return s.providers
}

func (s *Services) Users() UserService {
	return s.users
}

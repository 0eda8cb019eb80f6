package service

import (
	"github.com/MKhiriev/go-chat-seal/internal/adapter"
	"github.com/MKhiriev/go-chat-seal/internal/config"
	"github.com/MKhiriev/go-chat-seal/internal/engine"
	"github.com/MKhiriev/go-chat-seal/internal/logger"
)

type Services struct {
	Resolver   SessionResolver
	Encryption EncryptionService
	WarmJob    SessionWarmJob
}

func NewServices(appCfg config.App, chat adapter.ChatAdapter, eng engine.Engine, log *logger.Logger) *Services {
	cache := newSessionCache()
	resolver := NewSessionResolver(chat, eng, cache, log)
	encryption := NewEncryptionService(appCfg, chat, eng, resolver, cache, log)

	return &Services{
		Resolver:   resolver,
		Encryption: encryption,
		WarmJob:    NewSessionWarmJob(encryption),
	}
}

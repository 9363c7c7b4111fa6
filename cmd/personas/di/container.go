package di

import (
	"fmt"

	"go.uber.org/zap"

	ginhandler "persona-registry/internal/adapter/gin/handler"
	"persona-registry/internal/adapter/repository/memory"
	"persona-registry/internal/config"
	"persona-registry/internal/usecase/persona"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	Repo       *memory.PersonaRepo
	PersonaUC  persona.Usecase
	GinHandler *ginhandler.PersonaHandler
}

// NewContainer creates and initializes all application dependencies.
// Each container owns its own registry; nothing is shared between shells.
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	repo := memory.NewPersonaRepo(l)
	personaUC := persona.New(repo, l)

	return &Container{
		Config:     cfg,
		Logger:     l,
		Repo:       repo,
		PersonaUC:  personaUC,
		GinHandler: ginhandler.NewPersonaHandler(personaUC, l),
	}, nil
}

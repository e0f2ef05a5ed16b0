package app

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"mend/internal/config"
	"mend/internal/dataset"
	"mend/internal/services"
	"mend/pkg/categorizer"
)

// App wires the dataset store, the categorizer, and the annotation service
// together for the CLI commands.
type App struct {
	Config      *config.Config
	Store       *dataset.Store
	Categorizer categorizer.Categorizer
	Annotations *services.AnnotationService
}

func NewApp(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	log.SetLevel(level)

	store := dataset.NewStore()
	cat := categorizer.NewStatic()

	return &App{
		Config:      cfg,
		Store:       store,
		Categorizer: cat,
		Annotations: services.NewAnnotationService(store, cat),
	}, nil
}

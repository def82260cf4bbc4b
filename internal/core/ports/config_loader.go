package ports

import "go.trai.ch/cloister/internal/core/domain"

// ConfigLoader loads the kiosk settings. A missing configuration file is
// not an error: the loader falls back to domain.DefaultSettings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	Load() (domain.Settings, error)
}

package repository

import "github.com/oliveirafjdo-web/Mega/internal/domain/entity"

// SettingsRepository define a porta para a linha única de configurações.
type SettingsRepository interface {
	Get() (*entity.Settings, error)
	Update(s *entity.Settings) error
	// EnsureDefault garante a existência da linha id=1 na subida da aplicação.
	EnsureDefault() error
}

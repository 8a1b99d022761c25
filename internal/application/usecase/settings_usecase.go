package usecase

import (
	"github.com/oliveirafjdo-web/Mega/internal/application/dto"
	"github.com/oliveirafjdo-web/Mega/internal/domain"
	"github.com/oliveirafjdo-web/Mega/internal/domain/repository"
)

// SettingsUseCase leitura e atualização dos parâmetros globais (linha única).
type SettingsUseCase struct {
	settings repository.SettingsRepository
}

// NewSettingsUseCase constrói o caso de uso de configurações.
func NewSettingsUseCase(settings repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{settings: settings}
}

// Get devolve os parâmetros. Segredos do Mercado Livre nunca são ecoados;
// só o indicador de que as credenciais estão preenchidas.
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	cfg, err := uc.settings.Get()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.SettingsResponse{
		ImpostoPercent:  cfg.ImpostoPercent,
		DespesasPercent: cfg.DespesasPercent,
		MLClientID:      cfg.MLClientID,
		MLCredenciaisOK: cfg.MLClientID != "" && cfg.MLClientSecret != "",
		MLSyncAuto:      cfg.MLSyncAuto,
		MLUltimoSync:    cfg.MLUltimoSync,
	}, nil
}

// Update aplica só os campos presentes; ponteiros nulos mantêm o valor atual.
func (uc *SettingsUseCase) Update(in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	cfg, err := uc.settings.Get()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, domain.ErrNotFound
	}

	if in.ImpostoPercent != nil {
		if in.ImpostoPercent.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		cfg.ImpostoPercent = *in.ImpostoPercent
	}
	if in.DespesasPercent != nil {
		if in.DespesasPercent.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		cfg.DespesasPercent = *in.DespesasPercent
	}
	if in.MLClientID != nil {
		cfg.MLClientID = *in.MLClientID
	}
	if in.MLClientSecret != nil {
		cfg.MLClientSecret = *in.MLClientSecret
	}
	if in.MLAccessToken != nil {
		cfg.MLAccessToken = *in.MLAccessToken
	}
	if in.MLRefreshToken != nil {
		cfg.MLRefreshToken = *in.MLRefreshToken
	}
	if in.MLSyncAuto != nil {
		cfg.MLSyncAuto = *in.MLSyncAuto
	}

	if err := uc.settings.Update(cfg); err != nil {
		return nil, err
	}
	return uc.Get()
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oliveirafjdo-web/Mega/internal/domain/entity"
	"github.com/oliveirafjdo-web/Mega/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementação do porto SettingsRepository sobre PostgreSQL.
// A tabela configuracoes tem uma linha só (id = 1).
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository constrói o adaptador de configurações.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get devolve a linha única de configurações.
func (r *SettingsRepo) Get() (*entity.Settings, error) {
	query := `
		SELECT id, imposto_percent, despesas_percent,
			COALESCE(ml_client_id, ''), COALESCE(ml_client_secret, ''),
			COALESCE(ml_access_token, ''), COALESCE(ml_refresh_token, ''),
			COALESCE(ml_token_expira, ''), COALESCE(ml_user_id, ''),
			ml_sync_auto, COALESCE(ml_ultimo_sync, '')
		FROM configuracoes WHERE id = 1`
	var s entity.Settings
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.ID, &s.ImpostoPercent, &s.DespesasPercent,
		&s.MLClientID, &s.MLClientSecret, &s.MLAccessToken, &s.MLRefreshToken,
		&s.MLTokenExpira, &s.MLUserID, &s.MLSyncAuto, &s.MLUltimoSync,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get configuracoes: %w", err)
	}
	return &s, nil
}

// Update grava a linha única.
func (r *SettingsRepo) Update(s *entity.Settings) error {
	query := `
		UPDATE configuracoes SET imposto_percent = $1, despesas_percent = $2,
			ml_client_id = NULLIF($3, ''), ml_client_secret = NULLIF($4, ''),
			ml_access_token = NULLIF($5, ''), ml_refresh_token = NULLIF($6, ''),
			ml_token_expira = NULLIF($7, ''), ml_user_id = NULLIF($8, ''),
			ml_sync_auto = $9, ml_ultimo_sync = NULLIF($10, '')
		WHERE id = 1`
	_, err := r.q.Exec(context.Background(), query,
		s.ImpostoPercent, s.DespesasPercent,
		s.MLClientID, s.MLClientSecret, s.MLAccessToken, s.MLRefreshToken,
		s.MLTokenExpira, s.MLUserID, s.MLSyncAuto, s.MLUltimoSync,
	)
	if err != nil {
		return fmt.Errorf("update configuracoes: %w", err)
	}
	return nil
}

// EnsureDefault cria a linha id=1 zerada se ainda não existir. Chamado na
// subida da aplicação.
func (r *SettingsRepo) EnsureDefault() error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO configuracoes (id, imposto_percent, despesas_percent)
		VALUES (1, 0, 0)
		ON CONFLICT (id) DO NOTHING`)
	if err != nil {
		return fmt.Errorf("ensure configuracoes: %w", err)
	}
	return nil
}

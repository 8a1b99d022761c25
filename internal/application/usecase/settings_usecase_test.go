package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliveirafjdo-web/Mega/internal/application/dto"
	"github.com/oliveirafjdo-web/Mega/internal/domain"
	"github.com/oliveirafjdo-web/Mega/internal/domain/entity"
)

type fakeSettings struct {
	cfg *entity.Settings
}

func (f *fakeSettings) Get() (*entity.Settings, error) { return f.cfg, nil }
func (f *fakeSettings) Update(s *entity.Settings) error {
	f.cfg = s
	return nil
}
func (f *fakeSettings) EnsureDefault() error { return nil }

func TestSettings_GetNaoEcoaSegredos(t *testing.T) {
	repo := &fakeSettings{cfg: &entity.Settings{
		ID:              1,
		ImpostoPercent:  d("8.5"),
		DespesasPercent: d("3"),
		MLClientID:      "app-123",
		MLClientSecret:  "segredo",
		MLAccessToken:   "token",
	}}
	uc := NewSettingsUseCase(repo)

	resp, err := uc.Get()
	require.NoError(t, err)
	assert.True(t, resp.ImpostoPercent.Equal(d("8.5")))
	assert.Equal(t, "app-123", resp.MLClientID)
	assert.True(t, resp.MLCredenciaisOK)
}

func TestSettings_UpdateParcial(t *testing.T) {
	repo := &fakeSettings{cfg: &entity.Settings{
		ID:              1,
		ImpostoPercent:  d("8.5"),
		DespesasPercent: d("3"),
	}}
	uc := NewSettingsUseCase(repo)

	imposto := d("10")
	resp, err := uc.Update(dto.UpdateSettingsRequest{ImpostoPercent: &imposto})
	require.NoError(t, err)
	assert.True(t, resp.ImpostoPercent.Equal(d("10")))
	assert.True(t, resp.DespesasPercent.Equal(d("3")), "campo ausente mantém o valor")
}

func TestSettings_UpdateRejeitaPercentualNegativo(t *testing.T) {
	repo := &fakeSettings{cfg: &entity.Settings{ID: 1}}
	uc := NewSettingsUseCase(repo)

	neg := d("-1")
	_, err := uc.Update(dto.UpdateSettingsRequest{DespesasPercent: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettings_CredenciaisIncompletas(t *testing.T) {
	repo := &fakeSettings{cfg: &entity.Settings{ID: 1, MLClientID: "app-123"}}
	uc := NewSettingsUseCase(repo)

	resp, err := uc.Get()
	require.NoError(t, err)
	assert.False(t, resp.MLCredenciaisOK)
}

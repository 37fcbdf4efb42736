package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nujoom-retail/pos-backend/internal/kvstore"
)

func TestGetLanguageDefault(t *testing.T) {
	repo := NewKVRepository(kvstore.NewMemory(), LanguageEnglish)

	lang, err := repo.GetLanguage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, LanguageEnglish, lang)
}

func TestSetAndGetLanguage(t *testing.T) {
	repo := NewKVRepository(kvstore.NewMemory(), LanguageEnglish)
	ctx := context.Background()

	require.NoError(t, repo.SetLanguage(ctx, LanguageArabic))

	lang, err := repo.GetLanguage(ctx)
	require.NoError(t, err)
	assert.Equal(t, LanguageArabic, lang)
}

func TestSetLanguageRejectsUnknown(t *testing.T) {
	repo := NewKVRepository(kvstore.NewMemory(), LanguageEnglish)

	assert.Error(t, repo.SetLanguage(context.Background(), Language("fr")))
}

func TestCorruptRecordFallsBackToDefault(t *testing.T) {
	store := kvstore.NewMemory()
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "pos_lang", []byte("garbage")))

	repo := NewKVRepository(store, LanguageArabic)
	lang, err := repo.GetLanguage(ctx)
	require.NoError(t, err)
	assert.Equal(t, LanguageArabic, lang)
}

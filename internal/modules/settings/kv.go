package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/nujoom-retail/pos-backend/internal/kvstore"
)

// storageKey names the record holding the language preference.
const storageKey = "pos_lang"

// Repository persists the terminal's language preference.
type Repository interface {
	GetLanguage(ctx context.Context) (Language, error)
	SetLanguage(ctx context.Context, lang Language) error
}

type kvRepo struct {
	store       kvstore.Store
	defaultLang Language
}

// NewKVRepository returns a Repository backed by the local record store.
// A missing or unreadable record degrades to the configured default.
func NewKVRepository(store kvstore.Store, defaultLang Language) Repository {
	return &kvRepo{store: store, defaultLang: defaultLang}
}

func (r *kvRepo) GetLanguage(ctx context.Context) (Language, error) {
	raw, err := r.store.Get(ctx, storageKey)
	if err != nil {
		if err != kvstore.ErrNotFound {
			log.Printf("settings: read %s: %v, using default language", storageKey, err)
		}
		return r.defaultLang, nil
	}

	var lang Language
	if err := json.Unmarshal(raw, &lang); err != nil || !lang.Valid() {
		log.Printf("settings: corrupt %s record, using default language", storageKey)
		return r.defaultLang, nil
	}
	return lang, nil
}

func (r *kvRepo) SetLanguage(ctx context.Context, lang Language) error {
	if !lang.Valid() {
		return fmt.Errorf("settings: unsupported language %q", lang)
	}
	raw, err := json.Marshal(lang)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, storageKey, raw)
}

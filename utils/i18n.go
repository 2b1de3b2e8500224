package utils

import (
	"embed"
	"encoding/json"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

//go:embed i18n/*.json
var localeFS embed.FS

var bundle *i18n.Bundle

func init() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("i18n")
	if err != nil {
		log.WithError(err).Panic("fail to read locale files")
	}
	for _, entry := range entries {
		if _, err := bundle.LoadMessageFileFS(localeFS, "i18n/"+entry.Name()); err != nil {
			log.WithError(err).WithField("file", entry.Name()).Panic("fail to load locale file")
		}
	}
}

// NewLocalizer returns a localizer for the given language, falling back
// to English for messages the language does not cover. Underscored forms
// like zh_cn are accepted.
func NewLocalizer(lang string) *i18n.Localizer {
	if lang == "" {
		lang = "en"
	}
	lang = strings.ReplaceAll(lang, "_", "-")

	return i18n.NewLocalizer(bundle, lang, "en")
}

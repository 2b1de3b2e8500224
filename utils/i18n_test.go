package utils

import (
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
)

func localize(t *testing.T, localizer *i18n.Localizer, id string) string {
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	assert.NoError(t, err)
	return msg
}

func TestNewLocalizer(t *testing.T) {
	en := NewLocalizer("en")
	assert.Equal(t, "Open 24 hours", localize(t, en, "filter.isOpen24h"))

	// the store normalizes languages to the underscored form
	zh := NewLocalizer("zh_cn")
	assert.Equal(t, "24小时开放", localize(t, zh, "filter.isOpen24h"))
	assert.Equal(t, "我的位置", localize(t, zh, "navigation.my_location"))
}

func TestNewLocalizerFallsBackToEnglish(t *testing.T) {
	fr := NewLocalizer("fr")
	assert.Equal(t, "My location", localize(t, fr, "navigation.my_location"))

	empty := NewLocalizer("")
	assert.Equal(t, "Removed", localize(t, empty, "status.REMOVED"))
}

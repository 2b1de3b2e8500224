package client

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"

	"github.com/chcorophyll/Free-Public-Toilet-Map/schema"
)

// label resolves a message id through the view's localizer. A missing
// message falls back to the id itself so the panel never renders blank.
func (v *ViewState) label(id string) string {
	if v.localizer == nil {
		return id
	}

	msg, err := v.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		log.WithError(err).WithField("id", id).Debug("fail to localize label")
		return id
	}
	return msg
}

// FilterLabel returns the display text of a filter key.
func (v *ViewState) FilterLabel(key string) string {
	return v.label("filter." + key)
}

// StatusLabel returns the display text of a toilet status.
func (v *ViewState) StatusLabel(status schema.ToiletStatus) string {
	return v.label("status." + string(status))
}

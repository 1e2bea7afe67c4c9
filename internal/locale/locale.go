// Package locale negotiates BCP-47 tags onto the set of date/time
// translators marquee ships with.
package locale

import (
	"fmt"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/nl"
	"github.com/go-playground/locales/pt"
	"github.com/go-playground/locales/sv"
	"golang.org/x/text/language"
)

var supported = []struct {
	tag   language.Tag
	trans locales.Translator
}{
	{language.AmericanEnglish, en_US.New()},
	{language.BritishEnglish, en_GB.New()},
	{language.German, de.New()},
	{language.French, fr.New()},
	{language.Spanish, es.New()},
	{language.Italian, it.New()},
	{language.Japanese, ja.New()},
	{language.Dutch, nl.New()},
	{language.Portuguese, pt.New()},
	{language.Swedish, sv.New()},
}

var matcher = language.NewMatcher(supportedTags())

func supportedTags() []language.Tag {
	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		tags[i] = s.tag
	}
	return tags
}

// Match resolves a BCP-47 tag to the closest supported translator. The first
// supported entry (American English) is the matcher's fallback for related
// tags; tags with no relation at all are an error.
func Match(tag string) (locales.Translator, error) {
	parsed, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", tag, err)
	}

	_, idx, conf := matcher.Match(parsed)
	if conf == language.No {
		return nil, fmt.Errorf("unsupported locale %q", tag)
	}
	return supported[idx].trans, nil
}

// Package i18n holds the menu translations and picks the best one for a
// requested locale.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/automoto/neutron/logging"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

//go:embed locales/*.toml
var locales embed.FS

// ErrUnsupportedLocale is returned when no translation matches a locale.
var ErrUnsupportedLocale = errors.New("unsupported locale")

// Catalog translates message IDs for the selected locale. Missing messages
// render as their ID.
type Catalog struct {
	bundle    *goi18n.Bundle
	matcher   language.Matcher
	tags      []language.Tag
	tag       language.Tag
	localizer *goi18n.Localizer
	log       *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger for missing messages and locale changes.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) { c.log = l }
}

// New loads the embedded translations with English selected.
func New(opts ...Option) (*Catalog, error) {
	c := &Catalog{
		bundle: goi18n.NewBundle(language.English),
		log:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := fs.ReadDir(locales, "locales")
	if err != nil {
		return nil, fmt.Errorf("read embedded locales: %w", err)
	}
	for _, e := range entries {
		name := path.Join("locales", e.Name())
		data, err := locales.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if err := c.AddMessages(e.Name(), data); err != nil {
			return nil, err
		}
	}

	c.tag = language.English
	c.localizer = goi18n.NewLocalizer(c.bundle, c.tag.String())
	return c, nil
}

// AddMessages parses a message file such as active.de.toml. The language
// comes from the file name.
func (c *Catalog) AddMessages(name string, data []byte) error {
	if _, err := c.bundle.ParseMessageFileBytes(data, name); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	c.tags = c.bundle.LanguageTags()
	c.matcher = language.NewMatcher(c.tags)
	return nil
}

// LoadFile adds a message file from disk.
func (c *Catalog) LoadFile(p string) error {
	data, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("read %s: %w", p, err)
	}
	return c.AddMessages(path.Base(p), data)
}

// SetLocale selects the closest supported translation for locale.
func (c *Catalog) SetLocale(locale string) (language.Tag, error) {
	requested, err := language.Parse(locale)
	if err != nil {
		return c.tag, fmt.Errorf("%w: %q: %v", ErrUnsupportedLocale, locale, err)
	}
	_, index, confidence := c.matcher.Match(requested)
	if confidence == language.No {
		return c.tag, fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}

	c.tag = c.tags[index]
	c.localizer = goi18n.NewLocalizer(c.bundle, c.tag.String())
	c.log.Info("locale changed", "requested", locale, "locale", c.tag.String())
	return c.tag, nil
}

// Locale returns the selected locale.
func (c *Catalog) Locale() language.Tag {
	return c.tag
}

// Locales returns the available locales.
func (c *Catalog) Locales() []language.Tag {
	out := make([]language.Tag, len(c.tags))
	copy(out, c.tags)
	return out
}

// LocaleName names a locale in its own language, e.g. "français".
func LocaleName(tag language.Tag) string {
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return tag.String()
}

// T translates id, filling template fields from data.
func (c *Catalog) T(id string, data ...map[string]any) string {
	cfg := &goi18n.LocalizeConfig{MessageID: id}
	if len(data) > 0 {
		cfg.TemplateData = data[0]
	}
	s, err := c.localizer.Localize(cfg)
	if err != nil {
		c.log.Debug("missing translation", "id", id, "locale", c.tag.String(), "error", err)
		if s == "" {
			return id
		}
	}
	return s
}

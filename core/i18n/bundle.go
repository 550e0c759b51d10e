// File: bundle.go
// Title: Message Bundle
// Description: Loads localized message bundles from TOML or YAML files and
//              resolves message keys along a locale fallback chain with
//              positional argument formatting.
// Author: bastawesy
// Version: v0.2.1
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Replaced the template based Manager with an explicitly
//                       constructed Bundle and a per (locale, key) pattern cache
// - 2026-10-18 v0.2.1: Integer arguments follow the requested locale

package i18n

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	ruerror "github.com/bastawesy/reactorutils/core/error"
	rulog "github.com/bastawesy/reactorutils/core/log"
)

// Format represents the bundle file format
type Format int

const (
	// FormatAuto detects the format from the file extension (default)
	FormatAuto Format = iota

	// FormatTOML accepts .toml files only
	FormatTOML

	// FormatYAML accepts .yaml and .yml files only
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name as used in configuration files
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return FormatAuto, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatAuto, ruerror.New("unknown bundle format").
			WithCode(ruerror.CodeInvalidFormat).
			WithOperation("i18n.ParseFormat").
			WithDetail("format", name)
	}
}

func (f Format) extensions() []string {
	switch f {
	case FormatTOML:
		return []string{".toml"}
	case FormatYAML:
		return []string{".yaml", ".yml"}
	default:
		return []string{".toml", ".yaml", ".yml"}
	}
}

// Options defines how a Bundle is loaded
type Options struct {
	Dir           string // Directory containing bundle files, watched by Watch
	FS            fs.FS  // Alternative source; takes precedence over Dir
	BaseName      string // File name prefix (default: "messages")
	DefaultLocale string // Fallback locale (default: "en")
	Format        Format
	Logger        *rulog.Logger
}

// Bundle holds the messages of every locale found for one base name.
// It is safe for concurrent use.
type Bundle struct {
	fsys          fs.FS
	dir           string
	baseName      string
	defaultLocale string
	format        Format
	logger        *rulog.Logger

	mu       sync.RWMutex
	messages map[string]map[string]string // locale ("" = root) -> key -> text
	patterns map[string]pattern           // locale + "\x00" + key -> compiled pattern
}

// NewBundle creates a bundle and loads every matching file
func NewBundle(options Options) (*Bundle, error) {
	fsys := options.FS
	if fsys == nil {
		if strings.TrimSpace(options.Dir) == "" {
			return nil, ruerror.New("bundle needs a directory or a file system").
				WithCode(ruerror.CodeInvalidArgument).
				WithOperation("i18n.NewBundle")
		}
		info, err := os.Stat(options.Dir)
		if err != nil || !info.IsDir() {
			return nil, ruerror.New("bundle directory not found").
				WithCode(ruerror.CodeNotFound).
				WithOperation("i18n.NewBundle").
				WithDetail("directory", options.Dir)
		}
		fsys = os.DirFS(options.Dir)
	}

	if options.BaseName == "" {
		options.BaseName = BaseName
	}

	defaultLocale := DefaultLocale
	if options.DefaultLocale != "" {
		normalized, err := ParseLocale(options.DefaultLocale)
		if err != nil {
			return nil, err
		}
		defaultLocale = normalized
	}

	logger := options.Logger
	if logger == nil {
		logger = rulog.GetDefault()
	}

	b := &Bundle{
		fsys:          fsys,
		dir:           options.Dir,
		baseName:      options.BaseName,
		defaultLocale: defaultLocale,
		format:        options.Format,
		logger:        logger.WithName("i18n"),
	}
	if options.FS != nil {
		b.dir = ""
	}

	if err := b.Reload(); err != nil {
		return nil, err
	}
	return b, nil
}

// Reload re-reads every bundle file and clears the pattern cache
func (b *Bundle) Reload() error {
	messages, err := b.load()
	if err != nil {
		return err
	}

	b.mu.Lock()
	b.messages = messages
	b.patterns = make(map[string]pattern)
	b.mu.Unlock()

	b.logger.Debug("message bundle loaded", rulog.Fields{
		"base":    b.baseName,
		"locales": len(messages),
	})
	return nil
}

func (b *Bundle) load() (map[string]map[string]string, error) {
	entries, err := fs.ReadDir(b.fsys, ".")
	if err != nil {
		return nil, ruerror.Wrap(err, "failed to read bundle directory").
			WithCode(ruerror.CodeConfigError).
			WithOperation("i18n.Reload").
			WithDetail("base", b.baseName)
	}

	messages := make(map[string]map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		locale, ok := b.localeOf(entry.Name())
		if !ok {
			continue
		}

		data, err := b.readFile(entry.Name())
		if err != nil {
			return nil, err
		}

		target := messages[locale]
		if target == nil {
			target = make(map[string]string)
			messages[locale] = target
		}
		flatten("", data, target)
	}

	if len(messages) == 0 {
		return nil, ruerror.New("no bundle files found").
			WithCode(ruerror.CodeMissingResource).
			WithOperation("i18n.Reload").
			WithDetail("base", b.baseName).
			WithDetail("format", b.format.String())
	}
	return messages, nil
}

// localeOf maps a file name to the locale it carries: "messages.toml" is
// the root bundle (""), "messages_en_US.yaml" is "en-US".
func (b *Bundle) localeOf(fileName string) (string, bool) {
	ext := strings.ToLower(path.Ext(fileName))
	supported := false
	for _, e := range b.format.extensions() {
		if ext == e {
			supported = true
			break
		}
	}
	if !supported {
		return "", false
	}

	name := strings.TrimSuffix(fileName, path.Ext(fileName))
	if name == b.baseName {
		return "", true
	}

	suffix, found := strings.CutPrefix(name, b.baseName+"_")
	if !found {
		return "", false
	}
	locale := NormalizeLocale(suffix)
	if locale == "" {
		b.logger.Warn("ignoring bundle file with invalid locale", rulog.Fields{"file": fileName})
		return "", false
	}
	return locale, true
}

func (b *Bundle) readFile(fileName string) (map[string]interface{}, error) {
	content, err := fs.ReadFile(b.fsys, fileName)
	if err != nil {
		return nil, ruerror.Wrap(err, "failed to read bundle file").
			WithCode(ruerror.CodeConfigError).
			WithOperation("i18n.readFile").
			WithDetail("file", fileName)
	}

	data := make(map[string]interface{})
	if strings.EqualFold(path.Ext(fileName), ".toml") {
		err = toml.Unmarshal(content, &data)
	} else {
		err = yaml.Unmarshal(content, &data)
	}
	if err != nil {
		return nil, ruerror.Wrap(err, "failed to parse bundle file").
			WithCode(ruerror.CodeInvalidFormat).
			WithOperation("i18n.readFile").
			WithDetail("file", fileName)
	}
	return data, nil
}

// flatten copies nested tables into target using dotted keys
func flatten(prefix string, data map[string]interface{}, target map[string]string) {
	for key, value := range data {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}

		switch v := value.(type) {
		case map[string]interface{}:
			flatten(full, v, target)
		case map[interface{}]interface{}:
			nested := make(map[string]interface{}, len(v))
			for k, val := range v {
				nested[fmt.Sprint(k)] = val
			}
			flatten(full, nested, target)
		case string:
			target[full] = v
		case nil:
		default:
			target[full] = fmt.Sprint(v)
		}
	}
}

// Resolve returns the message for key in locale, formatted with params.
// Lookup walks the locale chain ("en-US", "en"), then the default locale
// chain, then the root bundle.
func (b *Bundle) Resolve(key, locale string, params ...any) (string, error) {
	p, found := b.lookup(key, locale)
	if !found {
		return "", ruerror.New("can't find resource for bundle").
			WithCode(ruerror.CodeMissingResource).
			WithOperation("i18n.Resolve").
			WithDetail("key", key).
			WithDetail("locale", locale).
			WithDetail("base", b.baseName)
	}
	numbers := NormalizeLocale(locale)
	if numbers == "" {
		numbers = b.defaultLocale
	}
	return p.render(numbers, params), nil
}

// Message resolves key in the default locale
func (b *Bundle) Message(key string, params ...any) (string, error) {
	return b.Resolve(key, b.defaultLocale, params...)
}

// Has reports whether key resolves for locale
func (b *Bundle) Has(key, locale string) bool {
	_, found := b.lookup(key, locale)
	return found
}

// Locales returns the loaded locales, sorted, without the root bundle
func (b *Bundle) Locales() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	locales := make([]string, 0, len(b.messages))
	for locale := range b.messages {
		if locale != "" {
			locales = append(locales, locale)
		}
	}
	sort.Strings(locales)
	return locales
}

// DefaultLocale returns the fallback locale of the bundle
func (b *Bundle) DefaultLocale() string {
	return b.defaultLocale
}

// Keys returns every key of the root bundle and all locales, sorted
func (b *Bundle) Keys() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, msgs := range b.messages {
		for key := range msgs {
			seen[key] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (b *Bundle) lookup(key, locale string) (pattern, bool) {
	chain := lookupChain(locale, b.defaultLocale)

	b.mu.RLock()
	for _, candidate := range chain {
		if p, ok := b.patterns[candidate+"\x00"+key]; ok {
			b.mu.RUnlock()
			return p, true
		}
		if text, ok := b.messages[candidate][key]; ok {
			b.mu.RUnlock()
			return b.compile(candidate, key, text), true
		}
	}
	b.mu.RUnlock()
	return nil, false
}

func (b *Bundle) compile(locale, key, text string) pattern {
	p := compilePattern(text)

	b.mu.Lock()
	// A concurrent Reload may have replaced the text
	if current, ok := b.messages[locale][key]; ok && current == text {
		b.patterns[locale+"\x00"+key] = p
	}
	b.mu.Unlock()
	return p
}

// String returns a short description of the bundle
func (b *Bundle) String() string {
	return fmt.Sprintf("Bundle{base=%s default=%s locales=%v}", b.baseName, b.defaultLocale, b.Locales())
}

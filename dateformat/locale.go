package dateformat

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Locale supplies the localized pieces of a rendering: short month names and
// meridiem markers. Relative phrases are always English.
type Locale struct {
	Tag    language.Tag
	Months [12]string
	AM     string
	PM     string
}

// Built-in locales.
var (
	English = Locale{
		Tag:    language.English,
		Months: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		AM:     "AM",
		PM:     "PM",
	}
	German = Locale{
		Tag:    language.German,
		Months: [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
		AM:     "AM",
		PM:     "PM",
	}
	French = Locale{
		Tag:    language.French,
		Months: [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
		AM:     "AM",
		PM:     "PM",
	}
	Spanish = Locale{
		Tag:    language.Spanish,
		Months: [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
		AM:     "a. m.",
		PM:     "p. m.",
	}
)

// English must stay first: the matcher falls back to index 0.
var builtinLocales = []Locale{English, German, French, Spanish}

var matcher = language.NewMatcher(localeTags())

func localeTags() []language.Tag {
	tags := make([]language.Tag, len(builtinLocales))
	for i, l := range builtinLocales {
		tags[i] = l.Tag
	}
	return tags
}

// String returns the BCP 47 tag of the locale.
func (l Locale) String() string {
	return l.Tag.String()
}

func (l Locale) month(i int) string {
	if l.Months[i] == "" {
		return English.Months[i]
	}
	return l.Months[i]
}

func (l Locale) meridiem(hour int) string {
	am, pm := l.AM, l.PM
	if am == "" || pm == "" {
		am, pm = English.AM, English.PM
	}
	if hour < 12 {
		return am
	}
	return pm
}

// LookupLocale resolves a BCP 47 or POSIX locale name such as "de-DE" or
// "fr_FR.UTF-8" to the closest built-in locale. Unsupported languages fall
// back to English; only malformed names are an error.
func LookupLocale(name string) (Locale, error) {
	name = posixToBCP47(name)
	if name == "" {
		return English, nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return English, fmt.Errorf("invalid locale %q: %w", name, err)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return English, nil
	}
	return builtinLocales[idx], nil
}

// DetectLocale reads LC_ALL, LC_TIME and LANG, in that order, and returns the
// first locale that resolves. It returns English when none is set.
func DetectLocale() Locale {
	for _, env := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		v := os.Getenv(env)
		if v == "" {
			continue
		}
		l, err := LookupLocale(v)
		if err != nil {
			continue
		}
		return l
	}
	return English
}

// posixToBCP47 turns "en_US.UTF-8@euro" into "en-US". "C" and "POSIX" map to "".
func posixToBCP47(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	if name == "C" || name == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(name, "_", "-")
}

package i18n

import (
	_ "embed"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed translations.yaml
var translationsFile []byte

var bundles map[string]map[string]string

const DefaultLanguage = "en"

func init() {
	err := yaml.Unmarshal(translationsFile, &bundles)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse translation bundles")
	}
}

// Languages returns every language a bundle exists for.
func Languages() []string {
	var languages []string
	for language := range bundles {
		languages = append(languages, language)
	}

	return languages
}

// Text looks up a diagnostic message by key for the given language. Unknown
// languages fall back to English; unknown keys return the key itself so a
// missing translation is visible rather than silent.
func Text(language string, key string) string {
	if bundle, ok := bundles[language]; ok {
		if message, ok := bundle[key]; ok {
			return message
		}
	}

	if language != DefaultLanguage {
		return Text(DefaultLanguage, key)
	}

	return key
}

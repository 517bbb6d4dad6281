package domain

import "strings"

const (
	// DefaultSpeaker is the built-in speaker identity used when no
	// reference recording has been provided.
	DefaultSpeaker = "p273"

	DefaultTask     = "default"
	DefaultLanguage = "en"
)

// SynthesisRequest describes one text-to-speech job. ReferencePath is empty
// when the built-in default speaker should be used.
type SynthesisRequest struct {
	Text          string
	Emotion       string
	Task          string
	Language      string
	ReferencePath string
}

// StyledText prepends bracketed style cues to the text, emotion first, then
// task unless the task is the default one.
// Example: "[happy][assistant] Hello world"
func (r SynthesisRequest) StyledText() string {
	var cues strings.Builder
	if emotion := strings.TrimSpace(r.Emotion); emotion != "" {
		cues.WriteString("[" + emotion + "]")
	}
	if task := strings.TrimSpace(r.Task); task != "" && task != DefaultTask {
		cues.WriteString("[" + task + "]")
	}
	return strings.TrimSpace(cues.String() + " " + r.Text)
}

var supportedLanguages = map[string]struct{}{
	"en":    {},
	"fr-fr": {},
	"pt-br": {},
}

var languageAliases = map[string]string{
	"fr":    "fr-fr",
	"fr-fr": "fr-fr",
	"pt":    "pt-br",
	"pt-br": "pt-br",
	"en":    "en",
	"en-us": "en",
	"en-gb": "en",
	// The loaded model has no voices for these, degrade to English.
	"es": "en",
	"de": "en",
	"it": "en",
}

// NormalizeLanguage maps a user-supplied language identifier onto the small
// set of codes the synthesis model supports. Unknown codes fall back to the
// default language rather than failing.
func NormalizeLanguage(language string) string {
	if language == "" {
		return DefaultLanguage
	}
	key := strings.ToLower(strings.TrimSpace(language))
	key = strings.ReplaceAll(key, " ", "")
	key = strings.ReplaceAll(key, "_", "-")

	lang, ok := languageAliases[key]
	if !ok {
		lang = key
	}
	if _, ok := supportedLanguages[lang]; !ok {
		return DefaultLanguage
	}
	return lang
}

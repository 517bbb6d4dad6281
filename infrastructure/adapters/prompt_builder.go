package adapters

import (
	"fmt"
	"os"
	"regexp"
	"story-voice-service/application/ports/outbound"
	"story-voice-service/domain"
	"strings"
)

type promptBuilder struct {
	templatePath      string
	placeholderRegexp *regexp.Regexp
}

func NewPromptBuilder(templatePath string) outbound.PromptBuilderPort {
	return &promptBuilder{
		templatePath:      templatePath,
		placeholderRegexp: regexp.MustCompile(`\{(\w+)}`),
	}
}

// Build reads the template and substitutes every {name} placeholder from the
// request parameters. A placeholder with no matching parameter is an error,
// not a silent passthrough.
func (p *promptBuilder) Build(req domain.StoryRequest) (string, error) {
	raw, err := os.ReadFile(p.templatePath)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrMissingTemplate, p.templatePath, err)
	}

	params := map[string]string{
		"grade":      req.Grade,
		"difficulty": req.Difficulty,
		"theme":      req.Theme,
	}

	var missing string
	prompt := p.placeholderRegexp.ReplaceAllStringFunc(string(raw), func(match string) string {
		name := strings.Trim(match, "{}")
		value, ok := params[name]
		if !ok {
			if missing == "" {
				missing = name
			}
			return match
		}
		return value
	})
	if missing != "" {
		return "", fmt.Errorf("%w: no value for placeholder %q", domain.ErrTemplateSubstitution, missing)
	}

	return prompt, nil
}

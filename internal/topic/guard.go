package topic

import (
	"regexp"
	"strings"
)

// Category is the scope verdict for a free-text message.
type Category string

const (
	CategoryCoding   Category = "coding"
	CategoryCasual   Category = "casual"
	CategoryDomain   Category = "domain"
	CategoryOffTopic Category = "off_topic"
)

var (
	codingRe = regexp.MustCompile(`(?i)\b(html|css|javascript|js|typescript|python|react|node|express|sql|database|api|debug|compile|code|snippet|write.*code|build.*website|script)\b`)
	casualRe = regexp.MustCompile(`(?i)\b(hi|hello|hey|yo|how are (you|u)|thanks|thank you|bye|goodbye|see ya|what'?s up|sup)\b`)
	domainRe = keywordRe(operationsKeywords, menuKeywords)
)

// keywordRe matches any keyword as a whole word, allowing a plain suffix so
// "shifts" and "clocked" count but "still" and "bunny" do not.
func keywordRe(lists ...[]string) *regexp.Regexp {
	var quoted []string
	for _, list := range lists {
		for _, kw := range list {
			quoted = append(quoted, regexp.QuoteMeta(kw))
		}
	}
	return regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)(s|es|ed|ing)?\b`)
}

// IsCoding reports whether msg asks for software or programming help.
func IsCoding(msg string) bool {
	return codingRe.MatchString(msg)
}

// IsCasual reports whether msg is greeting-style small talk.
func IsCasual(msg string) bool {
	return casualRe.MatchString(msg)
}

// IsDomain reports whether msg mentions a store operations or menu term.
func IsDomain(msg string) bool {
	return domainRe.MatchString(msg)
}

// Classify applies the checks in order. Coding wins over everything so
// "write python for my rota" is still refused.
func Classify(msg string) Category {
	switch {
	case IsCoding(msg):
		return CategoryCoding
	case IsCasual(msg):
		return CategoryCasual
	case IsDomain(msg):
		return CategoryDomain
	default:
		return CategoryOffTopic
	}
}

// InScope reports whether c may be answered at all.
func (c Category) InScope() bool {
	return c == CategoryCasual || c == CategoryDomain
}

// Refusal returns the fixed reply for an out-of-scope category, or "".
func (c Category) Refusal() string {
	switch c {
	case CategoryCoding:
		return CodingRefusal
	case CategoryOffTopic:
		return OffTopicRefusal
	}
	return ""
}

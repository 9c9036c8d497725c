package advice

import (
	"regexp"
	"strings"
	"unicode"
)

// Recommendation is one actionable suggestion extracted from generated text.
type Recommendation struct {
	Text string `json:"text"`
}

// RecommendationList is an ordered set of recommendations, in the order they
// appeared in the generated text.
type RecommendationList []Recommendation

// Texts returns the recommendation strings in order.
func (l RecommendationList) Texts() []string {
	out := make([]string, 0, len(l))
	for _, rec := range l {
		out = append(out, rec.Text)
	}
	return out
}

// enumeratorPattern matches "<digits>.<optional spaces><rest>". Numbers are
// not checked for order, so "3.5 is a good score" also starts an item.
var enumeratorPattern = regexp.MustCompile(`^(\d+)\.\s*(.*)$`)

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

type scanState int

const (
	stateNoItem scanState = iota
	stateInItem
)

type lineScanner struct {
	state scanState
	buf   strings.Builder
	items RecommendationList
}

// Parse segments a free-form numbered-list response into recommendations.
// It never fails: text without any enumerator line becomes a single item.
func Parse(raw string) RecommendationList {
	list, _ := parse(raw)
	return list
}

// parse also reports whether the single-item fallback was used.
func parse(raw string) (RecommendationList, bool) {
	s := &lineScanner{items: RecommendationList{}}
	for _, line := range strings.Split(lineBreaks.Replace(raw), "\n") {
		s.feed(strings.TrimSpace(line))
	}
	s.finish()
	return withFallback(s.items, raw)
}

func (s *lineScanner) feed(line string) {
	if m := enumeratorPattern.FindStringSubmatch(line); m != nil {
		s.flush()
		s.state = stateInItem
		s.buf.WriteString(m[2])
		s.buf.WriteString("\n")
		return
	}
	if s.state != stateInItem {
		return
	}
	if line == "" {
		if strings.TrimSpace(s.buf.String()) != "" {
			s.buf.WriteString("\n")
		}
		return
	}
	s.buf.WriteString(line)
	s.buf.WriteString("\n")
}

func (s *lineScanner) flush() {
	if s.state != stateInItem {
		return
	}
	text := strings.TrimRightFunc(s.buf.String(), unicode.IsSpace)
	s.items = append(s.items, Recommendation{Text: text})
	s.buf.Reset()
	s.state = stateNoItem
}

func (s *lineScanner) finish() {
	s.flush()
}

func withFallback(items RecommendationList, raw string) (RecommendationList, bool) {
	if len(items) > 0 || raw == "" {
		return items, false
	}
	return RecommendationList{{Text: strings.TrimSpace(raw)}}, true
}

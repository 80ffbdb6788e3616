// internal/resolver/model/parser.go
package model

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"intent-resolver/internal/common/metrics"
	"intent-resolver/internal/resolver/intent"
	"intent-resolver/pkg/catalog"
)

// Response parsing is an ordered chain of strategies; the first one
// that yields an operation name wins. Local models return anything from
// clean JSON to prose with a function name buried in it, so each
// strategy handles one observed failure mode.

var (
	functionFragment = regexp.MustCompile(`(?s)\{[^}]*"function"[^}]*\}`)
	anyBraceFragment = regexp.MustCompile(`(?s)\{.*\}`)
	functionLiteral  = regexp.MustCompile(`"function":\s*"([^"]+)"`)
	paramLiterals    = map[string]*regexp.Regexp{
		"segment":    regexp.MustCompile(`"segment":\s*"([^"]+)"`),
		"start_date": regexp.MustCompile(`"start_date":\s*"([^"]+)"`),
		"end_date":   regexp.MustCompile(`"end_date":\s*"([^"]+)"`),
	}

	callSyntax = regexp.MustCompile(`(\w+)\s*\(\s*(.*?)\s*\)`)
	callParam  = regexp.MustCompile(`(\w+)=(?:'([^']*)'|"([^"]*)"|([^,]*))`)

	codeFence   = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
	prefixLabel = regexp.MustCompile(`(?i)^\s*(?:output|function call|answer)\s*:\s*`)
)

type wireResult struct {
	Function   string                 `json:"function"`
	Parameters map[string]interface{} `json:"parameters"`
}

// ParseResponse extracts an operation candidate from raw completion
// text. Returns false when no strategy can find a catalog-plausible
// operation name.
func ParseResponse(response string, cat *catalog.Catalog) (intent.Candidate, bool) {
	response = stripDecoration(response)
	if response == "" {
		return intent.Candidate{}, false
	}

	if c, ok := parseFunctionFragment(response); ok {
		metrics.ResponseParseStrategy.WithLabelValues("json_function").Inc()
		return c, true
	}
	if c, ok := parseAnyFragment(response); ok {
		metrics.ResponseParseStrategy.WithLabelValues("json_any").Inc()
		return c, true
	}
	if c, ok := parseFieldLiterals(response); ok {
		metrics.ResponseParseStrategy.WithLabelValues("field_regex").Inc()
		return c, true
	}
	if c, ok := parseCallSyntax(response, cat); ok {
		metrics.ResponseParseStrategy.WithLabelValues("call_syntax").Inc()
		return c, true
	}
	if c, ok := parseCatalogMention(response, cat); ok {
		metrics.ResponseParseStrategy.WithLabelValues("name_mention").Inc()
		return c, true
	}
	return intent.Candidate{}, false
}

// stripDecoration removes markdown code fences and leading labels like
// "Output:" that models wrap around the payload.
func stripDecoration(response string) string {
	response = strings.TrimSpace(response)
	if m := codeFence.FindStringSubmatch(response); m != nil {
		response = m[1]
	}
	return strings.TrimSpace(prefixLabel.ReplaceAllString(response, ""))
}

func parseFunctionFragment(response string) (intent.Candidate, bool) {
	frag := functionFragment.FindString(response)
	if frag == "" {
		return intent.Candidate{}, false
	}
	return decodeWire(frag)
}

func parseAnyFragment(response string) (intent.Candidate, bool) {
	frag := anyBraceFragment.FindString(response)
	if frag == "" {
		return intent.Candidate{}, false
	}
	frag = strings.ReplaceAll(frag, "\n", " ")
	for strings.Contains(frag, "  ") {
		frag = strings.ReplaceAll(frag, "  ", " ")
	}
	return decodeWire(frag)
}

func decodeWire(frag string) (intent.Candidate, bool) {
	var w wireResult
	if err := json.Unmarshal([]byte(frag), &w); err != nil || w.Function == "" {
		return intent.Candidate{}, false
	}
	params := make(map[string]string, len(w.Parameters))
	for k, v := range w.Parameters {
		params[k] = stringify(v)
	}
	return intent.Candidate{Operation: w.Function, Parameters: params}, true
}

func parseFieldLiterals(response string) (intent.Candidate, bool) {
	m := functionLiteral.FindStringSubmatch(response)
	if m == nil {
		return intent.Candidate{}, false
	}
	params := map[string]string{}
	for name, re := range paramLiterals {
		if pm := re.FindStringSubmatch(response); pm != nil {
			params[name] = pm[1]
		}
	}
	return intent.Candidate{Operation: m[1], Parameters: params}, true
}

// parseCallSyntax handles the call-shaped dialect
// name(param='value', other="value", bare=word). Commas inside quotes
// do not split parameters.
func parseCallSyntax(response string, cat *catalog.Catalog) (intent.Candidate, bool) {
	m := callSyntax.FindStringSubmatch(response)
	if m == nil || !cat.Has(m[1]) {
		return intent.Candidate{}, false
	}

	params := map[string]string{}
	for _, pm := range callParam.FindAllStringSubmatch(m[2], -1) {
		value := pm[2]
		if value == "" {
			value = pm[3]
		}
		if value == "" {
			value = strings.TrimSpace(pm[4])
		}
		if pm[1] != "" && value != "" {
			params[pm[1]] = value
		}
	}
	return intent.Candidate{Operation: m[1], Parameters: params}, true
}

// parseCatalogMention scans for operation names quoted verbatim in
// prose, preferring the longest (most specific) one.
func parseCatalogMention(response string, cat *catalog.Catalog) (intent.Candidate, bool) {
	best := ""
	for _, name := range cat.Names() {
		if strings.Contains(response, name) && len(name) > len(best) {
			best = name
		}
	}
	if best == "" {
		return intent.Candidate{}, false
	}
	return intent.Candidate{Operation: best, Parameters: map[string]string{}}, true
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		raw, _ := json.Marshal(v)
		return string(raw)
	}
}

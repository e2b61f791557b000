package clientcfg

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/firelift/firelift/internal/appconfig"
)

// ParseError reports a failed normalization, naming the stage that failed.
type ParseError struct {
	Kind   string   // "syntax", "not-an-object" or "missing-fields"
	Fields []string // every missing field when Kind is "missing-fields"
	Err    error
}

func (e *ParseError) Error() string {
	if e.Kind == "missing-fields" {
		return fmt.Sprintf("config text invalid (%s): %s", e.Kind, strings.Join(e.Fields, ", "))
	}
	return fmt.Sprintf("config text invalid (%s)", e.Kind)
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	lineComment  = regexp.MustCompile(`//[^\n]*`)
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	declaration  = regexp.MustCompile(`^\s*(?:export\s+)?(?:const|var|let)\s+[A-Za-z_$][A-Za-z0-9_$]*\s*=\s*`)
	bareKey      = regexp.MustCompile(`([{,]\s*)([A-Za-z_$][A-Za-z0-9_$]*)\s*:`)
	trailComma   = regexp.MustCompile(`,(\s*[}\]])`)
)

// Normalize reduces free-form pasted configuration text to a validated
// record. The input may carry a variable declaration, an export keyword,
// comments, unquoted keys, trailing commas and a trailing semicolon.
//
// The brace-span and key-quoting stages are deliberate approximations that
// cover the documented format family; this is not a general object-literal
// parser. Normalizing an already-normalized document is a no-op.
func Normalize(rawText string) (appconfig.Config, error) {
	text := StripComments(rawText)
	text = ExtractObject(text)
	text = StripDeclaration(text)
	text = StripTerminator(text)
	text = QuoteBareKeys(text)
	text = StripTrailingCommas(text)

	var value any
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return appconfig.Config{}, &ParseError{Kind: "syntax", Err: err}
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return appconfig.Config{}, &ParseError{Kind: "not-an-object"}
	}

	cfg := appconfig.Config{
		APIKey:            stringField(obj, "apiKey"),
		AuthDomain:        stringField(obj, "authDomain"),
		ProjectID:         stringField(obj, "projectId"),
		StorageBucket:     stringField(obj, "storageBucket"),
		MessagingSenderID: stringField(obj, "messagingSenderId"),
		AppID:             stringField(obj, "appId"),
	}
	if m := stringField(obj, "measurementId"); m != "" {
		cfg.MeasurementID = m
	}

	if missing := cfg.MissingFields(); len(missing) > 0 {
		return appconfig.Config{}, &ParseError{Kind: "missing-fields", Fields: missing}
	}
	return cfg, nil
}

// StripComments removes single-line and block comments anywhere in the
// text.
func StripComments(s string) string {
	s = lineComment.ReplaceAllString(s, "")
	return blockComment.ReplaceAllString(s, "")
}

// ExtractObject returns the outermost brace-delimited substring, or the
// whole text when no brace pair is found.
func ExtractObject(s string) string {
	open := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if open >= 0 && end > open {
		return s[open : end+1]
	}
	return s
}

// StripDeclaration removes a leading `export const ident =` style prefix.
func StripDeclaration(s string) string {
	return declaration.ReplaceAllString(s, "")
}

// StripTerminator removes a trailing statement terminator and surrounding
// whitespace.
func StripTerminator(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ";")
	return strings.TrimSpace(s)
}

// QuoteBareKeys quotes unquoted object keys: a bare identifier followed by
// a colon at the start of the object or right after a comma.
func QuoteBareKeys(s string) string {
	return bareKey.ReplaceAllString(s, `${1}"${2}":`)
}

// StripTrailingCommas drops commas immediately preceding a closing brace
// or bracket.
func StripTrailingCommas(s string) string {
	return trailComma.ReplaceAllString(s, "${1}")
}

func stringField(obj map[string]any, key string) string {
	if v, ok := obj[key].(string); ok {
		return v
	}
	return ""
}

package clientcfg

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firelift/firelift/internal/appconfig"
)

func TestNormalize_DeclarationWrapper(t *testing.T) {
	t.Parallel()

	raw := `const firebaseConfig = { apiKey: "X", authDomain: "a.b", projectId: "p", storageBucket: "s", messagingSenderId: "1", appId: "1:1:web:1" };`

	cfg, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, appconfig.Config{
		APIKey:            "X",
		AuthDomain:        "a.b",
		ProjectID:         "p",
		StorageBucket:     "s",
		MessagingSenderID: "1",
		AppID:             "1:1:web:1",
	}, cfg)
}

func TestNormalize_KitchenSink(t *testing.T) {
	t.Parallel()

	raw := `// Paste this into your app
/* generated by the console */
export const config = {
  apiKey: "AIzaX", // web API key
  "authDomain": "demo.firebaseapp.com",
  projectId: "demo",
  storageBucket: "demo.appspot.com",
  messagingSenderId: "42",
  appId: "1:42:web:abc",
  measurementId: "G-TEST",
};`

	cfg, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, "AIzaX", cfg.APIKey)
	assert.Equal(t, "demo.firebaseapp.com", cfg.AuthDomain)
	assert.Equal(t, "G-TEST", cfg.MeasurementID)
}

func TestNormalize_MissingFields(t *testing.T) {
	t.Parallel()

	_, err := Normalize(`{"apiKey":"X","projectId":"p"}`)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "missing-fields", parseErr.Kind)
	assert.Equal(t, []string{"authDomain", "storageBucket", "appId"}, parseErr.Fields)
}

func TestNormalize_Syntax(t *testing.T) {
	t.Parallel()

	_, err := Normalize(`{ apiKey: "unterminated `)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "syntax", parseErr.Kind)
}

func TestNormalize_NotAnObject(t *testing.T) {
	t.Parallel()

	_, err := Normalize(`["apiKey", "projectId"]`)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "not-an-object", parseErr.Kind)
}

func TestNormalize_IdempotentOnOwnOutput(t *testing.T) {
	t.Parallel()

	first, err := Normalize(`var cfg = {
		apiKey: "X", authDomain: "a.b", projectId: "p",
		storageBucket: "s", appId: "1:1:web:1",
	};`)
	require.NoError(t, err)

	strict, err := json.Marshal(first)
	require.NoError(t, err)

	second, err := Normalize(string(strict))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNormalize_OptionalFieldDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Normalize(`{ "apiKey": "X", "authDomain": "a.b", "projectId": "p", "storageBucket": "s", "appId": "1:1:web:1", "measurementId": "" }`)
	require.NoError(t, err)
	assert.Empty(t, cfg.MessagingSenderID)
	assert.Empty(t, cfg.MeasurementID)
}

func TestStripComments(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\nb", StripComments("a// trailing\nb"))
	assert.Equal(t, "a b", StripComments("a /* x\ny */ b"))
}

func TestExtractObject(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `{ "a": 1 }`, ExtractObject(`const x = { "a": 1 };`))
	assert.Equal(t, `no braces here`, ExtractObject(`no braces here`))
	assert.Equal(t, `{ "a": { "b": 2 } }`, ExtractObject(`x = { "a": { "b": 2 } } tail`))
}

func TestStripDeclaration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `rest`, StripDeclaration(`export const firebaseConfig = rest`))
	assert.Equal(t, `rest`, StripDeclaration(`let x=rest`))
	assert.Equal(t, `plain text`, StripDeclaration(`plain text`))
}

func TestQuoteBareKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `{"apiKey": "X", "appId": "Y"}`, QuoteBareKeys(`{apiKey: "X", appId: "Y"}`))
	// Already quoted keys are untouched.
	assert.Equal(t, `{"apiKey": "X"}`, QuoteBareKeys(`{"apiKey": "X"}`))
}

func TestStripTrailingCommas(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `{"a": [1, 2]}`, StripTrailingCommas(`{"a": [1, 2,],}`))
}

package pronounce

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/jelou/internal/config"
	"github.com/heartmarshall/jelou/internal/dictionary"
	"github.com/heartmarshall/jelou/internal/domain"
	"github.com/heartmarshall/jelou/internal/phonetic"
	"github.com/heartmarshall/jelou/internal/translit"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type mockDictionarySource struct {
	DictionaryFunc func(ctx context.Context) (*dictionary.Dictionary, error)
}

func (m *mockDictionarySource) Dictionary(ctx context.Context) (*dictionary.Dictionary, error) {
	if m.DictionaryFunc != nil {
		return m.DictionaryFunc(ctx)
	}
	return nil, domain.ErrDictionaryUnavailable
}

// ===========================================================================
// Helpers
// ===========================================================================

const sampleDict = `;;; test dictionary
hello HH AH0 L OW1
hello(2) HH EH0 L OW1
see S IY1
think TH IH1 NG K
world W ER1 L D
monday M AH1 N D EY2
`

func parseDict(t *testing.T, src string) *dictionary.Dictionary {
	t.Helper()
	res, err := dictionary.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return res.Dictionary
}

func staticSource(d *dictionary.Dictionary) *mockDictionarySource {
	return &mockDictionarySource{DictionaryFunc: func(ctx context.Context) (*dictionary.Dictionary, error) {
		return d, nil
	}}
}

func newTestService(t *testing.T, dict dictionarySource, logger *slog.Logger) *Service {
	t.Helper()
	tables, err := translit.NewRuleTableSet()
	require.NoError(t, err)
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return NewService(logger, dict, dictionary.NewResolver(), translit.NewEngine(tables), tables,
		config.EngineConfig{BatchWorkers: 4, MaxInputLength: 100})
}

// ===========================================================================
// TranslateWord
// ===========================================================================

func TestService_TranslateWord_Found(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, staticSource(parseDict(t, sampleDict)), nil)

	tests := []struct {
		word string
		want WordResult
	}{
		{"see", WordResult{Word: "see", IPA: "siː", Spanish: "sí", Found: true}},
		{"hello", WordResult{Word: "hello", IPA: "hɛloʊ", Spanish: "jelóu", Found: true}},
		{"  World ", WordResult{Word: "world", IPA: "wɝld", Spanish: "wérld", Found: true}},
		{"think", WordResult{Word: "think", IPA: "θɪŋk", Spanish: "zínk", Found: true}},
		{"Monday", WordResult{Word: "monday", IPA: "mʌndeɪ", Spanish: "mándei", Found: true}},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, err := svc.TranslateWord(context.Background(), tt.word)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_TranslateWord_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, staticSource(parseDict(t, sampleDict)), nil)

	got, err := svc.TranslateWord(context.Background(), "doesnotexist123")
	require.NoError(t, err)
	assert.False(t, got.Found)
	assert.Empty(t, got.IPA)
	assert.Empty(t, got.Spanish)
	assert.Equal(t, "doesnotexist123", got.Word)
}

func TestService_TranslateWord_EmptyWordIsMiss(t *testing.T) {
	t.Parallel()

	dict := &mockDictionarySource{DictionaryFunc: func(ctx context.Context) (*dictionary.Dictionary, error) {
		t.Error("dictionary must not be loaded for an empty word")
		return nil, nil
	}}
	svc := newTestService(t, dict, nil)

	got, err := svc.TranslateWord(context.Background(), "   ")
	require.NoError(t, err)
	assert.False(t, got.Found)
}

func TestService_TranslateWord_DictionaryUnavailable(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &mockDictionarySource{}, nil)

	_, err := svc.TranslateWord(context.Background(), "hello")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDictionaryUnavailable))
}

func TestService_TranslateWord_UnknownPhonemeCode(t *testing.T) {
	t.Parallel()

	dict := dictionary.New(map[string][]dictionary.Variant{
		"bogus": {{Index: 0, Tokens: phonetic.ParseTokens("B XX1 G")}},
	})
	svc := newTestService(t, staticSource(dict), nil)

	_, err := svc.TranslateWord(context.Background(), "bogus")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownPhonemeCode))
}

// ===========================================================================
// TranslateIPA
// ===========================================================================

func TestService_TranslateIPA(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &mockDictionarySource{}, nil)

	tests := []struct {
		in   string
		want string
	}{
		{"θɪŋk", "zink"},
		{"ʃiː", "shí"},
		{"wɝld", "werld"},
		{"/θɪŋk/", "zink"},
		{"[ˈwɝld]", "werld"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := svc.TranslateIPA(context.Background(), tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_TranslateIPA_Malformed(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &mockDictionarySource{}, nil)

	for _, in := range []string{"", "   ", "//", "[ˈ]"} {
		_, err := svc.TranslateIPA(context.Background(), in)
		assert.True(t, errors.Is(err, domain.ErrMalformedNotation), "input %q: %v", in, err)
	}
}

func TestService_TranslateIPA_LogsUnmapped(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	svc := newTestService(t, &mockDictionarySource{}, logger)

	got, err := svc.TranslateIPA(context.Background(), "θɪŋkx")
	require.NoError(t, err)
	assert.Equal(t, "zinkx", got)
	assert.Contains(t, buf.String(), "unmapped ipa symbols")
	assert.Contains(t, buf.String(), "service=pronounce")
}

// ===========================================================================
// BatchTranslate
// ===========================================================================

func TestService_BatchTranslate_PreservesOrder(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, staticSource(parseDict(t, sampleDict)), nil)
	words := []string{"hello", "world", "think"}

	items, err := svc.BatchTranslate(context.Background(), words)
	require.NoError(t, err)
	require.Len(t, items, 3)

	for i, w := range words {
		single, err := svc.TranslateWord(context.Background(), w)
		require.NoError(t, err)
		assert.NoError(t, items[i].Err)
		assert.Equal(t, single, items[i].Result, "position %d", i)
	}
	assert.Equal(t, "jelóu", items[0].Result.Spanish)
	assert.Equal(t, "wérld", items[1].Result.Spanish)
	assert.Equal(t, "zínk", items[2].Result.Spanish)
}

func TestService_BatchTranslate_MissDoesNotAbort(t *testing.T) {
	t.Parallel()

	dict := dictionary.New(map[string][]dictionary.Variant{
		"see":   {{Index: 0, Tokens: phonetic.ParseTokens("S IY1")}},
		"bogus": {{Index: 0, Tokens: phonetic.ParseTokens("B XX1 G")}},
	})
	svc := newTestService(t, staticSource(dict), nil)

	items, err := svc.BatchTranslate(context.Background(), []string{"bogus", "doesnotexist123", "see"})
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.True(t, errors.Is(items[0].Err, domain.ErrUnknownPhonemeCode))
	assert.NoError(t, items[1].Err)
	assert.False(t, items[1].Result.Found)
	assert.NoError(t, items[2].Err)
	assert.Equal(t, "sí", items[2].Result.Spanish)
}

func TestService_BatchTranslate_DictionaryUnavailable(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &mockDictionarySource{}, nil)

	_, err := svc.BatchTranslate(context.Background(), []string{"hello", "world"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDictionaryUnavailable))

	// Direct notation keeps working without the dictionary.
	got, err := svc.TranslateIPA(context.Background(), "θɪŋk")
	require.NoError(t, err)
	assert.Equal(t, "zink", got)
}

func TestService_BatchTranslate_Empty(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &mockDictionarySource{}, nil)

	items, err := svc.BatchTranslate(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestService_BatchTranslate_LogsIdentifiers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	svc := newTestService(t, staticSource(parseDict(t, sampleDict)), logger)

	_, err := svc.BatchTranslate(context.Background(), []string{"see", "doesnotexist123"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"batch translated"`)
	assert.Contains(t, buf.String(), `"found":1`)
}

// ===========================================================================
// ValidateInput
// ===========================================================================

func TestValidateInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		maxLen  int
		wantErr string
	}{
		{"ok", "hello", 100, ""},
		{"empty", "", 100, "required"},
		{"blank", " \t ", 100, "required"},
		{"at limit", strings.Repeat("a", 100), 100, ""},
		{"over limit", strings.Repeat("a", 101), 100, "too long"},
		{"multibyte at limit", strings.Repeat("ʃ", 10), 10, ""},
		{"default limit", strings.Repeat("a", 101), 0, "too long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInput("word", tt.input, tt.maxLen)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))
			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, "word", ve.Errors[0].Field)
			assert.Contains(t, ve.Errors[0].Message, tt.wantErr)
		})
	}
}

func TestService_ValidateInput_UsesConfiguredLimit(t *testing.T) {
	t.Parallel()

	tables, err := translit.NewRuleTableSet()
	require.NoError(t, err)
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), &mockDictionarySource{},
		dictionary.NewResolver(), translit.NewEngine(tables), tables,
		config.EngineConfig{BatchWorkers: 1, MaxInputLength: 5})

	assert.NoError(t, svc.ValidateInput("word", "hello"))
	assert.Error(t, svc.ValidateInput("word", "hellos"))
}

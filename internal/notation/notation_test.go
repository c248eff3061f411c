package notation

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/heartmarshall/jelou/internal/domain"
	"github.com/heartmarshall/jelou/internal/phonetic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize_StripsDecoration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "θɪŋk", "θɪŋk"},
		{"slashes", "/θɪŋk/", "θɪŋk"},
		{"brackets", "[wɝld]", "wɝld"},
		{"stress marks", "hɛˈloʊ", "hɛloʊ"},
		{"secondary stress", "ˌɪnfɚˈmeɪʃən", "ɪnfɚmeɪʃən"},
		{"syllable periods", "ɪn.fɚ.meɪ.ʃən", "ɪnfɚmeɪʃən"},
		{"ascii length", "/ʃi:/", "ʃiː"},
		{"free-standing length dropped", "bɪːt", "bɪt"},
		{"half-long dropped", "siˑ", "si"},
		{"aliases", "ɹɛd ɡoʊ", "rɛdgoʊ"},
		{"optional sound", "fæ(ː)st", "fæst"},
		{"uppercase ascii", "/SI:/", "siː"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			segs, err := Sanitize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Render(segs))
		})
	}
}

func TestSanitize_DecomposedInputNormalized(t *testing.T) {
	t.Parallel()

	// "é" written as e + combining acute becomes one unknown rune after NFC.
	segs, err := Sanitize("ke\u0301t")
	require.NoError(t, err)
	require.Len(t, segs, 3)
	assert.Equal(t, "é", segs[1].Raw)
}

func TestSanitize_Malformed(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "   ", "//", "[ˈˌ.]", "ː:", "ʔ"} {
		_, err := Sanitize(raw)
		require.Error(t, err, "raw %q", raw)
		assert.True(t, errors.Is(err, domain.ErrMalformedNotation), "raw %q", raw)
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"θɪŋk", "/ʃiː/", "[wɝld]", "hɛˈloʊ", "eːɪ", "ɾʃ", "ʧɜːʧ",
		"/ˈvɛ.hɪ.kəl/", "a:ʊ", "ɡəʊ", "xʔaɪ", "ə(ʊ)",
	}
	for _, raw := range inputs {
		first, err := Sanitize(raw)
		require.NoError(t, err, raw)

		second, err := Sanitize(Render(first))
		require.NoError(t, err, raw)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("Sanitize not idempotent for %q (-first +second):\n%s", raw, diff)
		}
	}
}

func TestSanitize_NoStress(t *testing.T) {
	t.Parallel()

	segs, err := Sanitize("ˈʃiː")
	require.NoError(t, err)
	for _, s := range segs {
		assert.Equal(t, phonetic.StressNone, s.Stress)
	}
}

func TestParse_LastLongVowelStressed(t *testing.T) {
	t.Parallel()

	segs, err := Parse("ʃiː")
	require.NoError(t, err)
	require.Len(t, segs, 2)
	assert.Equal(t, phonetic.StressPrimary, segs[1].Stress)

	segs, err = Parse("fuːliː")
	require.NoError(t, err)
	assert.Equal(t, phonetic.StressNone, segs[1].Stress)
	assert.Equal(t, phonetic.StressPrimary, segs[3].Stress)
}

func TestParse_ShortVowelsStayUnstressed(t *testing.T) {
	t.Parallel()

	segs, err := Parse("hɛˈloʊ")
	require.NoError(t, err)
	for _, s := range segs {
		assert.Equal(t, phonetic.StressNone, s.Stress)
	}
}

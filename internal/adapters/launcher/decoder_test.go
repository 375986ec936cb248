package launcher_test

import (
	"strings"
	"testing"

	"github.com/orca-repos/orca-sub012/internal/adapters/launcher"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestDecoder_SplitMultiByteSequence(t *testing.T) {
	input := []byte("größe: 日本語 ✓\n")

	// Every split point must produce the same text as a single decode.
	for split := 0; split <= len(input); split++ {
		d := launcher.NewDecoder(nil)
		got := d.Decode(input[:split]) + d.Decode(input[split:]) + d.Flush()
		assert.Equal(t, string(input), got, "split at %d", split)
	}
}

func TestDecoder_ByteAtATime(t *testing.T) {
	input := []byte("€uro ünïcödé")
	d := launcher.NewDecoder(unicode.UTF8)

	var sb strings.Builder
	for _, b := range input {
		sb.WriteString(d.Decode([]byte{b}))
	}
	sb.WriteString(d.Flush())

	assert.Equal(t, string(input), sb.String())
}

func TestDecoder_HoldsIncompleteTail(t *testing.T) {
	d := launcher.NewDecoder(nil)
	euro := []byte("€")

	assert.Empty(t, d.Decode(euro[:2]))
	assert.Equal(t, "€", d.Decode(euro[2:]))
}

func TestDecoder_FlushReplacesTruncatedSequence(t *testing.T) {
	d := launcher.NewDecoder(nil)
	euro := []byte("€")

	assert.Equal(t, "a", d.Decode(append([]byte("a"), euro[:2]...)))
	assert.Contains(t, d.Flush(), "\uFFFD")
}

func TestDecoder_LargeChunk(t *testing.T) {
	input := strings.Repeat("äöü", 10000)
	d := launcher.NewDecoder(nil)

	assert.Equal(t, input, d.Decode([]byte(input))+d.Flush())
}

func TestDecoder_SingleByteEncoding(t *testing.T) {
	d := launcher.NewDecoder(charmap.ISO8859_1)

	assert.Equal(t, "café", d.Decode([]byte{'c', 'a', 'f', 0xE9}))
}

func TestLocaleEncoding(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want encoding.Encoding
	}{
		{name: "empty", env: nil, want: unicode.UTF8},
		{name: "utf8", env: map[string]string{"LANG": "en_US.UTF-8"}, want: unicode.UTF8},
		{name: "latin1", env: map[string]string{"LANG": "de_DE.ISO-8859-1"}, want: charmap.Windows1252},
		{name: "lc_all wins", env: map[string]string{"LC_ALL": "C.UTF-8", "LANG": "de_DE.ISO-8859-15"}, want: unicode.UTF8},
		{name: "modifier", env: map[string]string{"LC_CTYPE": "de_DE.ISO-8859-15@euro"}, want: charmap.ISO8859_15},
		{name: "no charset", env: map[string]string{"LANG": "C"}, want: unicode.UTF8},
		{name: "unknown charset", env: map[string]string{"LANG": "xx.NOPE"}, want: unicode.UTF8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, launcher.LocaleEncoding(tt.env))
		})
	}
}

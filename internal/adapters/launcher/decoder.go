package launcher

import (
	"bytes"
	"errors"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const minDecodeBuffer = 4096

// Decoder turns a byte stream into text, keeping incomplete multi-byte
// sequences until the rest of them arrives.
type Decoder struct {
	t       transform.Transformer
	pending []byte
	dst     []byte
}

// NewDecoder returns a decoder for enc. A nil encoding decodes UTF-8.
func NewDecoder(enc encoding.Encoding) *Decoder {
	if enc == nil {
		enc = unicode.UTF8
	}
	return &Decoder{
		t:   enc.NewDecoder(),
		dst: make([]byte, minDecodeBuffer),
	}
}

// Decode converts the next chunk of the stream. Bytes of a sequence that is
// split across chunks are held back until the next call.
func (d *Decoder) Decode(data []byte) string {
	return d.decode(data, false)
}

// Flush decodes whatever is still pending and resets the decoder.
func (d *Decoder) Flush() string {
	s := d.decode(nil, true)
	d.t.Reset()
	return s
}

func (d *Decoder) decode(data []byte, atEOF bool) string {
	src := data
	if len(d.pending) > 0 {
		src = append(d.pending, data...)
		d.pending = nil
	}
	if len(src) == 0 && !atEOF {
		return ""
	}

	var out strings.Builder
	for {
		nDst, nSrc, err := d.t.Transform(d.dst, src, atEOF)
		out.Write(d.dst[:nDst])
		src = src[nSrc:]

		switch {
		case err == nil:
			return out.String()
		case errors.Is(err, transform.ErrShortDst):
			if nDst == 0 && nSrc == 0 {
				d.dst = make([]byte, 2*len(d.dst))
			}
		case errors.Is(err, transform.ErrShortSrc):
			d.pending = bytes.Clone(src)
			return out.String()
		default:
			// Undecodable input is passed through unchanged.
			out.Write(src)
			return out.String()
		}
	}
}

// LocaleEncoding returns the character encoding named by the locale
// variables of env (LC_ALL, LC_CTYPE, LANG), falling back to UTF-8.
func LocaleEncoding(env map[string]string) encoding.Encoding {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		locale := env[key]
		if locale == "" {
			continue
		}
		_, charset, ok := strings.Cut(locale, ".")
		if !ok {
			break
		}
		charset, _, _ = strings.Cut(charset, "@")
		if enc, err := htmlindex.Get(charset); err == nil {
			return enc
		}
		break
	}
	return unicode.UTF8
}

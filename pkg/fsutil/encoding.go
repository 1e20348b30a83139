package fsutil

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnknownEncoding is returned for an encoding name jandent does not support.
var ErrUnknownEncoding = errors.New("unknown encoding")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Encodings lists the supported encoding names.
func Encodings() []string {
	return []string{"utf-8", "shift_jis", "euc-jp", "iso-2022-jp"}
}

// LookupEncoding resolves an encoding name. Matching ignores case, and
// common aliases such as "sjis" and "cp932" are accepted. An empty name is UTF-8.
func LookupEncoding(name string) (encoding.Encoding, error) {
	canonical, err := CanonicalEncoding(name)
	if err != nil {
		return nil, err
	}
	switch canonical {
	case "shift_jis":
		return japanese.ShiftJIS, nil
	case "euc-jp":
		return japanese.EUCJP, nil
	case "iso-2022-jp":
		return japanese.ISO2022JP, nil
	default:
		return unicode.UTF8, nil
	}
}

// CanonicalEncoding maps an encoding name or alias to one of Encodings.
func CanonicalEncoding(name string) (string, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-") {
	case "", "utf-8", "utf8":
		return "utf-8", nil
	case "shift-jis", "sjis", "cp932", "windows-31j":
		return "shift_jis", nil
	case "euc-jp", "eucjp":
		return "euc-jp", nil
	case "iso-2022-jp", "jis":
		return "iso-2022-jp", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
}

// Decode converts raw file bytes in the named encoding to a string.
// A leading UTF-8 byte order mark is dropped.
func Decode(content []byte, name string) (string, error) {
	enc, err := LookupEncoding(name)
	if err != nil {
		return "", err
	}
	if isUTF8(name) {
		return string(bytes.TrimPrefix(content, utf8BOM)), nil
	}

	out, err := enc.NewDecoder().Bytes(content)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", name, err)
	}
	return string(out), nil
}

// Encode converts text to bytes in the named encoding. Characters the
// target encoding cannot represent are an error rather than being replaced.
func Encode(text, name string) ([]byte, error) {
	enc, err := LookupEncoding(name)
	if err != nil {
		return nil, err
	}
	if isUTF8(name) {
		return []byte(text), nil
	}

	out, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", name, err)
	}
	return out, nil
}

func isUTF8(name string) bool {
	canonical, err := CanonicalEncoding(name)
	return err == nil && canonical == "utf-8"
}

package spapiclient

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"context"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/ArshadAliDS/Amazon/internal/domain"
	spapidomain "github.com/ArshadAliDS/Amazon/infrastructure/integrator/spapi/domain"
)

// DownloadDocument fetches the report bytes from the pre-signed URL
// (no auth header), decompresses per the document's indicator and
// decodes the text. The whole body is buffered; report documents are
// bounded in practice.
func (c *SPAPIClient) DownloadDocument(ctx context.Context, doc *spapidomain.ReportDocument) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, doc.URL, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.downloadClient.Do(req)
	if err != nil {
		return "", domain.WrapFailure(err, domain.FailureTransport, "downloading report document")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", domain.NewFailure(domain.FailureTransport,
			"report document download: status %d", resp.StatusCode).WithDiagnostic(string(body))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.WrapFailure(err, domain.FailureTransport, "reading report document body")
	}

	return DecodeDocument(raw, doc.CompressionAlgorithm)
}

// DecodeDocument decompresses (GZIP/ZLIB, anything else passes through)
// and decodes report bytes as UTF-8, falling back to Latin-1 (which
// cannot fail) when the bytes are not valid UTF-8.
func DecodeDocument(raw []byte, compression string) (string, error) {
	decompressed, err := decompress(raw, compression)
	if err != nil {
		return "", err
	}

	if utf8.Valid(decompressed) {
		return string(decompressed), nil
	}
	return decodeLatin1(decompressed), nil
}

func decompress(raw []byte, compression string) ([]byte, error) {
	switch strings.ToUpper(compression) {
	case "GZIP":
		r, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, domain.WrapFailure(err, domain.FailureTransport, "opening gzip report document")
		}
		defer r.Close()
		out, err := io.ReadAll(r)
		if err != nil {
			return nil, domain.WrapFailure(err, domain.FailureTransport, "decompressing gzip report document")
		}
		return out, nil
	case "ZLIB":
		r, err := zlib.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, domain.WrapFailure(err, domain.FailureTransport, "opening zlib report document")
		}
		defer r.Close()
		out, err := io.ReadAll(r)
		if err != nil {
			return nil, domain.WrapFailure(err, domain.FailureTransport, "decompressing zlib report document")
		}
		return out, nil
	default:
		return raw, nil
	}
}

func decodeLatin1(b []byte) string {
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes)
}

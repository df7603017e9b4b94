package urlid_test

import (
	"encoding/base64"
	"net/url"
	"strings"
	"testing"

	"urlshot/pkg/urlid"
)

func TestAnonymize_ReplacesQuerySpan(t *testing.T) {
	c := urlid.New(urlid.Options{})
	raw := "https://example.com/verify?email=ZXhhbXBsZUBleGFtcGxlLmNvbQ==&lang=en"

	ids, err := c.Scan(raw)
	if err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}
	res, err := c.Anonymize(raw, ids)
	if err != nil {
		t.Fatalf("unexpected anonymize error: %v", err)
	}

	want := "https://example.com/verify?email=anonymized_value&lang=en"
	if res.AnonymizedURL != want {
		t.Fatalf("got %q, want %q", res.AnonymizedURL, want)
	}
	if res.OriginalURL != raw {
		t.Fatalf("original URL must be preserved, got %q", res.OriginalURL)
	}
	if len(res.Identifiers) != 1 {
		t.Fatalf("expected one identifier, got %d", len(res.Identifiers))
	}
}

func TestAnonymize_NoIdentifiers(t *testing.T) {
	c := urlid.New(urlid.Options{})
	raw := "https://example.com/about?lang=en"

	res, err := c.Anonymize(raw, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.AnonymizedURL != raw {
		t.Fatalf("anonymized URL must equal original, got %q", res.AnonymizedURL)
	}
	if res.Identifiers == nil || len(res.Identifiers) != 0 {
		t.Fatalf("identifiers must be empty, not absent: %+v", res.Identifiers)
	}
}

func TestAnonymize_PathSegment(t *testing.T) {
	c := urlid.New(urlid.Options{})
	span := base64.RawURLEncoding.EncodeToString([]byte("user@example.com"))
	raw := "https://example.com/confirm/" + span + "/done"

	ids, err := c.Scan(raw)
	if err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}
	res, err := c.Anonymize(raw, ids)
	if err != nil {
		t.Fatalf("unexpected anonymize error: %v", err)
	}

	if strings.Contains(res.AnonymizedURL, span) {
		t.Fatalf("raw span must not survive anonymization: %q", res.AnonymizedURL)
	}
	if !strings.Contains(res.AnonymizedURL, "anonymized_value") {
		t.Fatalf("placeholder missing from %q", res.AnonymizedURL)
	}
	if _, err := url.Parse(res.AnonymizedURL); err != nil {
		t.Fatalf("anonymized URL must stay parseable: %v", err)
	}
}

func TestAnonymize_RepeatedSecretsShareOnePlaceholder(t *testing.T) {
	c := urlid.New(urlid.Options{})
	span := base64.StdEncoding.EncodeToString([]byte("user@example.com"))
	raw := "https://example.com/?a=" + url.QueryEscape(span) + "&b=" + url.QueryEscape(span)

	ids, err := c.Scan(raw)
	if err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected two identifiers, got %d", len(ids))
	}
	if ids[0].Anonymized != ids[1].Anonymized {
		t.Fatalf("identical secrets must anonymize identically")
	}

	res, err := c.Anonymize(raw, ids)
	if err != nil {
		t.Fatalf("unexpected anonymize error: %v", err)
	}
	if got := strings.Count(res.AnonymizedURL, "anonymized_value"); got != 2 {
		t.Fatalf("expected both occurrences replaced, got %d in %q", got, res.AnonymizedURL)
	}
}

func TestAnonymize_Idempotent(t *testing.T) {
	c := urlid.New(urlid.Options{})
	raw := "https://example.com/verify?email=ZXhhbXBsZUBleGFtcGxlLmNvbQ=="

	ids, err := c.Scan(raw)
	if err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}
	res, err := c.Anonymize(raw, ids)
	if err != nil {
		t.Fatalf("unexpected anonymize error: %v", err)
	}

	// Scanning the anonymized output must find nothing: the placeholder does
	// not decode to printable text.
	again, err := c.Scan(res.AnonymizedURL)
	if err != nil {
		t.Fatalf("unexpected rescan error: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("anonymized URL must not contain identifiers, got %+v", again)
	}
}

func TestExpandDecoded(t *testing.T) {
	c := urlid.New(urlid.Options{})
	span := base64.StdEncoding.EncodeToString([]byte("user@example.com"))
	raw := "https://example.com/?email=" + span

	ids, err := c.Scan(raw)
	if err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}

	decoded := urlid.ExpandDecoded(raw, ids)
	if decoded != "https://example.com/?email=user@example.com" {
		t.Fatalf("unexpected decoded URL: %q", decoded)
	}
}

package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreatePatterns(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/hyph-ru.pat.txt":
			w.Write([]byte(".бе2з1у2\nа1б\n"))
		case "/hyph-en-us.pat.txt":
			w.Write([]byte(".ach4\nat3est\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()
	defer func(old string) { patternURL = old }(patternURL)
	patternURL = srv.URL + "/hyph-%s.pat.txt"

	out := filepath.Join(t.TempDir(), "hyphenationpatterns.go")
	if err := createPatterns(out, []string{"ru", " EN "}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	for _, want := range []string{"package lang", "\t\"en\": `\n.ach4\nat3est\n`,", "\t\"ru\": `\n.бе2з1у2\nа1б\n`,"} {
		if !strings.Contains(got, want) {
			t.Errorf("generated file misses %q:\n%s", want, got)
		}
	}
	if strings.Index(got, `"en"`) > strings.Index(got, `"ru"`) {
		t.Errorf("languages are not sorted")
	}

	if err := createPatterns(out, []string{"xx"}); err == nil {
		t.Errorf("createPatterns(xx) succeeded, want error")
	}
	if err := downloadPatterns(t.TempDir(), []string{"de"}); err == nil {
		t.Errorf("downloadPatterns(de) succeeded with a missing file, want error")
	}
}

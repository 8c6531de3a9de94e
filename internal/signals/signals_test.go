package signals

import (
	"net/url"
	"strings"
	"testing"

	"github.com/MOYARU/crs/internal/analysis"
)

func TestDomainPrior(t *testing.T) {
	w := DefaultWeights()

	cases := []struct {
		host  string
		id    string
		delta float64
	}{
		{host: "https://www.nih.gov", id: "DOMAIN_GOV", delta: w.SuffixGov},
		{host: "https://www.mit.edu", id: "DOMAIN_EDU", delta: w.SuffixEdu},
		{host: "https://www.wikipedia.org", id: "DOMAIN_ORG", delta: w.SuffixOrg},
		{host: "https://www.example.com", id: "DOMAIN_COM", delta: w.SuffixCom},
		{host: "https://shop.example.co.uk", id: "DOMAIN_OTHER", delta: w.SuffixOther},
		{host: "https://WWW.NIH.GOV", id: "DOMAIN_GOV", delta: w.SuffixGov},
	}

	for _, tc := range cases {
		t.Run(tc.host, func(t *testing.T) {
			u, err := url.Parse(tc.host)
			if err != nil {
				t.Fatalf("url.Parse error: %v", err)
			}
			sig := DomainPrior(u, w)
			if sig.ID != tc.id {
				t.Fatalf("DomainPrior(%s).ID = %s, want %s", tc.host, sig.ID, tc.id)
			}
			if sig.Delta != tc.delta {
				t.Fatalf("DomainPrior(%s).Delta = %f, want %f", tc.host, sig.Delta, tc.delta)
			}
			if sig.Clause == "" {
				t.Fatal("prior clause must not be empty")
			}
		})
	}
}

func htmlPage(title, text string) *analysis.Page {
	u, _ := url.Parse("https://example.com")
	return &analysis.Page{
		FinalURL:  u,
		UsedHTTPS: true,
		IsHTML:    true,
		Title:     title,
		Text:      text,
	}
}

func TestTransport(t *testing.T) {
	w := DefaultWeights()

	p := htmlPage("t", "text")
	sig := Transport(p, w)
	if sig.Delta != w.HTTPSBonus {
		t.Fatalf("HTTPS delta = %f, want %f", sig.Delta, w.HTTPSBonus)
	}

	p.UsedHTTPS = false
	sig = Transport(p, w)
	if sig.Delta != 0 {
		t.Fatalf("plain HTTP must earn no bonus, got %f", sig.Delta)
	}
	if sig.Clause == "" {
		t.Fatal("plain HTTP still gets an explanation clause")
	}
}

func TestTitleSignal(t *testing.T) {
	w := DefaultWeights()

	if _, ok := Title(htmlPage("", "text"), w); ok {
		t.Fatal("empty title must not fire")
	}
	sig, ok := Title(htmlPage("A Title", "text"), w)
	if !ok || sig.Delta != w.TitleBonus {
		t.Fatalf("title signal = %+v ok=%v", sig, ok)
	}
}

func TestTextVolume(t *testing.T) {
	w := DefaultWeights()

	cases := []struct {
		name  string
		text  string
		id    string
		delta float64
	}{
		{name: "long", text: strings.Repeat("a", w.LongTextLen), id: "CONTENT_TEXT_LONG", delta: w.LongTextBonus},
		{name: "moderate", text: strings.Repeat("a", w.ModerateTextLen), id: "CONTENT_TEXT_MODERATE", delta: w.ModerateTextBonus},
		{name: "short", text: "tiny", id: "CONTENT_TEXT_SHORT", delta: -w.ShortTextPenalty},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sig, ok := TextVolume(htmlPage("t", tc.text), w)
			if !ok {
				t.Fatal("text volume always fires for HTML")
			}
			if sig.ID != tc.id || sig.Delta != tc.delta {
				t.Fatalf("got %+v, want id=%s delta=%f", sig, tc.id, tc.delta)
			}
		})
	}
}

func TestHintSignals(t *testing.T) {
	w := DefaultWeights()

	cases := []struct {
		name   string
		signal ContentSignal
		fires  []string
		quiet  []string
	}{
		{
			name:   "author",
			signal: AuthorHint,
			fires:  []string{"Written By Jane Doe", "article by John Smith", "AUTHOR: staff"},
			quiet:  []string{"nothing to see", "bystander effect by itself"},
		},
		{
			name:   "date",
			signal: DateHint,
			fires:  []string{"Published March 3, 2021", "updated recently", "copyright 1998", "12/31/2020"},
			quiet:  []string{"no times here", "version 3.50"},
		},
		{
			name:   "references",
			signal: ReferenceHint,
			fires:  []string{"References", "see the bibliography", "doi:10.1000/xyz", "PMID 123456", "a peer-reviewed journal"},
			quiet:  []string{"no citing material", "reference-free prose"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, text := range tc.fires {
				if _, ok := tc.signal(htmlPage("t", text), w); !ok {
					t.Errorf("%s should fire for %q", tc.name, text)
				}
			}
			for _, text := range tc.quiet {
				if _, ok := tc.signal(htmlPage("t", text), w); ok {
					t.Errorf("%s should not fire for %q", tc.name, text)
				}
			}
		})
	}
}

func TestContentSignalsSkipNonHTML(t *testing.T) {
	w := DefaultWeights()
	u, _ := url.Parse("https://example.com/doc.pdf")
	p := &analysis.Page{FinalURL: u, UsedHTTPS: true, IsHTML: false, BodyLen: 1024}

	for _, sig := range ContentSignals() {
		if fired, ok := sig(p, w); ok {
			t.Fatalf("content signal %s fired on non-HTML page", fired.ID)
		}
	}

	note := NonHTML(p)
	if note.Delta != 0 {
		t.Fatalf("non-HTML note must be neutral, got %f", note.Delta)
	}
	if !strings.Contains(note.Clause, "limited") {
		t.Fatalf("non-HTML clause should mention limited analysis: %q", note.Clause)
	}
}

package mwapi

import "testing"

func TestSiteMap_Resolve(t *testing.T) {
	sites := SiteMap{"enwiki": "en.wikipedia.org"}

	host, ok := sites.Resolve("enwiki")
	if !ok || host != "en.wikipedia.org" {
		t.Errorf("Resolve(enwiki) = (%q, %v)", host, ok)
	}

	if _, ok := sites.Resolve("nosuchwiki"); ok {
		t.Error("unknown key should not resolve")
	}
}

func TestDefaultSites_CoverWellKnownWikis(t *testing.T) {
	sites := DefaultSites()

	cases := map[string]string{
		"enwiki":       "en.wikipedia.org",
		"wikidatawiki": "www.wikidata.org",
		"testwiki":     "test.wikipedia.org",
	}
	for key, want := range cases {
		host, ok := sites.Resolve(key)
		if !ok {
			t.Errorf("%s missing from default sites", key)
			continue
		}
		if host != want {
			t.Errorf("%s = %q, want %q", key, host, want)
		}
	}
}

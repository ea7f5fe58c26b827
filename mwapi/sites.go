package mwapi

// SiteResolver maps a short wiki key (e.g. "enwiki") to its domain host.
// The client only consumes the lookup; ownership of the mapping stays with
// the caller.
type SiteResolver interface {
	Resolve(wiki string) (host string, ok bool)
}

// SiteMap is a static wiki-key to host mapping
type SiteMap map[string]string

func (m SiteMap) Resolve(wiki string) (string, bool) {
	host, ok := m[wiki]
	return host, ok
}

// DefaultSites returns the wikis the patrol tool serves
func DefaultSites() SiteMap {
	return SiteMap{
		"enwiki":       "en.wikipedia.org",
		"dewiki":       "de.wikipedia.org",
		"frwiki":       "fr.wikipedia.org",
		"eswiki":       "es.wikipedia.org",
		"itwiki":       "it.wikipedia.org",
		"ptwiki":       "pt.wikipedia.org",
		"plwiki":       "pl.wikipedia.org",
		"nlwiki":       "nl.wikipedia.org",
		"ruwiki":       "ru.wikipedia.org",
		"jawiki":       "ja.wikipedia.org",
		"zhwiki":       "zh.wikipedia.org",
		"idwiki":       "id.wikipedia.org",
		"trwiki":       "tr.wikipedia.org",
		"svwiki":       "sv.wikipedia.org",
		"wikidatawiki": "www.wikidata.org",
		"testwiki":     "test.wikipedia.org",
		"test2wiki":    "test2.wikipedia.org",
	}
}

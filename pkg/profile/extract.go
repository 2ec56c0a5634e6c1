package profile

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultBaseURL is the site whose profile pages the selectors target.
const DefaultBaseURL = "https://github.com"

// Selectors for the profile page markup.
const (
	nameSelector     = "span.p-name.vcard-fullname"
	usernameSelector = "span.p-nickname.vcard-username"
	bioSelector      = "div.user-profile-bio"
	bioAttr          = "data-bio-text"
	counterSelector  = "span.Counter"
	labelSelector    = "span.p-label"
	locationIndex    = 1
)

// Extractor pulls profile fields out of a parsed profile page.
type Extractor struct {
	// BaseURL is the site root used to recognise the followers and
	// following tab links. Defaults to DefaultBaseURL.
	BaseURL string
}

// Extract reads a profile from doc using the default base URL.
func Extract(doc *goquery.Document) Profile {
	return Extractor{}.Extract(doc)
}

// Extract reads every field from doc. Each lookup is independent and a
// missing element yields a Missing field; it never fails.
func (e Extractor) Extract(doc *goquery.Document) Profile {
	if doc == nil {
		return Profile{
			Name:       Missing(KeyName),
			Username:   Missing(KeyUsername),
			ReposCount: Missing(KeyReposCount),
			Followers:  Missing(KeyFollowers),
			Following:  Missing(KeyFollowing),
			Location:   Missing(KeyLocation),
			Bio:        Missing(KeyBio),
		}
	}

	// Username first: the tab links are located with it.
	username := firstText(doc, KeyUsername, usernameSelector)

	return Profile{
		Name:       firstText(doc, KeyName, nameSelector),
		Username:   username,
		ReposCount: firstText(doc, KeyReposCount, counterSelector),
		Followers:  e.tabCount(doc, KeyFollowers, username, "followers"),
		Following:  e.tabCount(doc, KeyFollowing, username, "following"),
		Location:   nthText(doc, KeyLocation, labelSelector, locationIndex),
		Bio:        firstAttr(doc, KeyBio, bioSelector, bioAttr),
	}
}

func (e Extractor) baseURL() string {
	if e.BaseURL == "" {
		return DefaultBaseURL
	}
	return strings.TrimRight(e.BaseURL, "/")
}

// TabURL returns the absolute link to a profile tab, e.g. followers.
func (e Extractor) TabURL(username, tab string) string {
	return e.baseURL() + tabPath(username, tab)
}

func tabPath(username, tab string) string {
	return "/" + url.PathEscape(username) + "?tab=" + tab
}

func firstText(doc *goquery.Document, k Key, selector string) Field {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return Missing(k)
	}
	return Found(k, strings.TrimSpace(sel.Text()))
}

func nthText(doc *goquery.Document, k Key, selector string, n int) Field {
	sel := doc.Find(selector)
	if sel.Length() <= n {
		return Missing(k)
	}
	return Found(k, strings.TrimSpace(sel.Eq(n).Text()))
}

func firstAttr(doc *goquery.Document, k Key, selector, attr string) Field {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return Missing(k)
	}
	v, ok := sel.Attr(attr)
	if !ok {
		return Missing(k)
	}
	return Found(k, strings.TrimSpace(v))
}

// tabCount reads the counter nested in the link to the user's tab. The link
// is matched by comparing href values, either absolute or site-relative.
func (e Extractor) tabCount(doc *goquery.Document, k Key, username Field, tab string) Field {
	if !username.Found {
		return Missing(k)
	}

	abs := e.TabURL(username.Value, tab)
	rel := tabPath(username.Value, tab)

	link := doc.Find("a[href]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		return href == abs || href == rel
	}).First()
	if link.Length() == 0 {
		return Missing(k)
	}

	counter := link.Find("span").First()
	if counter.Length() == 0 {
		return Missing(k)
	}
	return Found(k, strings.TrimSpace(counter.Text()))
}

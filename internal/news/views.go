package news

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RelatedLimit is the default number of related articles shown next to an article
const RelatedLimit = 4

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s, strips diacritics and joins words with single hyphens
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.Trim(nonAlnum.ReplaceAllString(strings.ToLower(folded), "-"), "-")
}

// FormatCategoryName turns a slug into a display name: "olah-raga" becomes "Olah raga"
func FormatCategoryName(slug string) string {
	name := strings.ReplaceAll(slug, "-", " ")
	if name == "" {
		return name
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// AvailableCategories returns the distinct non-empty categories in first-seen order
func (l Listing) AvailableCategories() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, a := range l {
		if a.Kategori == "" {
			continue
		}
		if _, ok := seen[a.Kategori]; ok {
			continue
		}
		seen[a.Kategori] = struct{}{}
		out = append(out, a.Kategori)
	}
	return out
}

// FilterByCategory returns the articles whose slugified category equals the slugified input
func (l Listing) FilterByCategory(slug string) Listing {
	want := Slugify(slug)
	out := make(Listing, 0)
	for _, a := range l {
		if a.Kategori != "" && Slugify(a.Kategori) == want {
			out = append(out, a)
		}
	}
	return out
}

// OriginalCategoryName returns the category as written upstream for a slug
func (l Listing) OriginalCategoryName(slug string) (string, bool) {
	matches := l.FilterByCategory(slug)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Kategori, true
}

// CategoryTitle is OriginalCategoryName with FormatCategoryName as fallback
func (l Listing) CategoryTitle(slug string) string {
	if name, ok := l.OriginalCategoryName(slug); ok {
		return name
	}
	return FormatCategoryName(slug)
}

// RelatedArticles returns up to limit articles sharing selected's category, never excludeID.
// A non-positive limit uses RelatedLimit.
func (l Listing) RelatedArticles(selected Article, excludeID ArticleID, limit int) Listing {
	if limit <= 0 {
		limit = RelatedLimit
	}
	out := make(Listing, 0, limit)
	if selected.Kategori == "" {
		return out
	}
	for _, a := range l {
		if len(out) == limit {
			break
		}
		if a.Kategori == selected.Kategori && a.ID != excludeID {
			out = append(out, a)
		}
	}
	return out
}

// Search matches query case-insensitively against title, category and author.
// An empty query matches nothing.
func (l Listing) Search(query string) Listing {
	out := make(Listing, 0)
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return out
	}
	for _, a := range l {
		if strings.Contains(strings.ToLower(a.Judul), q) ||
			strings.Contains(strings.ToLower(a.Kategori), q) ||
			strings.Contains(strings.ToLower(a.Penulis), q) {
			out = append(out, a)
		}
	}
	return out
}

// Summaries returns the listing as list-view summaries with excerpts of at most n runes
func (l Listing) Summaries(n int) []Summary {
	out := make([]Summary, 0, len(l))
	for _, a := range l {
		out = append(out, a.Summarize(n))
	}
	return out
}

// FindByID returns the article with the given id
func (l Listing) FindByID(id ArticleID) (Article, bool) {
	for _, a := range l {
		if a.ID == id {
			return a, true
		}
	}
	return Article{}, false
}

// ArticlesByIDs returns the articles among ids, keyed by id. Unknown ids are skipped.
func (l Listing) ArticlesByIDs(ids []ArticleID) map[ArticleID]Article {
	want := make(map[ArticleID]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	out := make(map[ArticleID]Article, len(ids))
	for _, a := range l {
		if _, ok := want[a.ID]; ok {
			if _, dup := out[a.ID]; !dup {
				out[a.ID] = a
			}
		}
	}
	return out
}

// CategoryGroup is one category section of the front page
type CategoryGroup struct {
	Kategori string    `json:"kategori"`
	Slug     string    `json:"slug"`
	Articles []Summary `json:"articles"`
}

// Headline returns the first article of the listing
func (l Listing) Headline() (Article, bool) {
	if len(l) == 0 {
		return Article{}, false
	}
	return l[0], true
}

// GroupByCategory groups every article after the headline by category, in first-seen order
func (l Listing) GroupByCategory() []CategoryGroup {
	groups := make([]CategoryGroup, 0)
	if len(l) < 2 {
		return groups
	}
	index := make(map[string]int)
	for _, a := range l[1:] {
		i, ok := index[a.Kategori]
		if !ok {
			i = len(groups)
			index[a.Kategori] = i
			groups = append(groups, CategoryGroup{Kategori: a.Kategori, Slug: Slugify(a.Kategori)})
		}
		groups[i].Articles = append(groups[i].Articles, a.Summarize(ExcerptLength))
	}
	return groups
}

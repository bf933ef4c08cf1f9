// Package news holds the article model returned by the upstream API and the
// read-only views the portal derives from a listing.
package news

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// ArticleID accepts both numeric and string ids from the upstream payload
type ArticleID string

// UnmarshalJSON implements json.Unmarshaler
func (id *ArticleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ArticleID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ArticleID(n.String())
	return nil
}

func (id ArticleID) String() string {
	return string(id)
}

// Article is one record of the publikasi-berita listing
type Article struct {
	ID        ArticleID `json:"id"`
	Kategori  string    `json:"kategori"`
	Judul     string    `json:"judul"`
	Penulis   string    `json:"penulis"`
	Gambar    string    `json:"gambar,omitempty"`
	Deskripsi string    `json:"deskripsi,omitempty"`
	CreatedAt string    `json:"created_at,omitempty"`
	UpdatedAt string    `json:"updated_at,omitempty"`
}

// Excerpt returns the description as plain text cut to at most n runes
func (a Article) Excerpt(n int) string {
	text := a.Deskripsi
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(a.Deskripsi)); err == nil {
		text = doc.Text()
	}
	text = strings.Join(strings.Fields(text), " ")

	if n <= 0 || utf8.RuneCountInString(text) <= n {
		return text
	}
	r := []rune(text)
	return strings.TrimSpace(string(r[:n])) + "..."
}

// ExcerptLength is the excerpt size of list views
const ExcerptLength = 150

// Summary is an article as shown in list views, with its description reduced to a plain-text excerpt
type Summary struct {
	Article
	Excerpt string `json:"excerpt"`
}

// Summarize pairs the article with an excerpt of at most n runes
func (a Article) Summarize(n int) Summary {
	return Summary{Article: a, Excerpt: a.Excerpt(n)}
}

// Listing is the full article sequence in upstream order
type Listing []Article

package excerpt

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kyokomi/emoji"

	"github.com/siahsang/blogfront/internal/utils/stringutils"
)

const MaxLength = 100

// Text renders content as plain text: tags are dropped, whitespace collapsed
// and emoji shortcodes such as :rocket: replaced.
func Text(content string) string {
	text := content
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err == nil {
		text = doc.Text()
	}
	return strings.Join(strings.Fields(emoji.Sprint(text)), " ")
}

// Of returns the card excerpt of content.
func Of(content string) string {
	return stringutils.Truncate(Text(content), MaxLength)
}

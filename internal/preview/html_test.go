package preview

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/maheshrc27/fluxora/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderDoc(t *testing.T, platform models.Platform, content Content) *goquery.Document {
	t.Helper()
	html, err := RenderHTML(platform, content)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestRenderHTML_CounterAndHeading(t *testing.T) {
	doc := renderDoc(t, models.PlatformTwitter, Content{Caption: strings.Repeat("q", 300)})

	assert.Equal(t, "X (Twitter) Preview", doc.Find("h3.font-semibold").First().Text())
	counter := doc.Find(".char-counter")
	assert.Equal(t, "(300/280 chars)", counter.Text())
	assert.True(t, counter.HasClass("over-limit"))
	assert.Equal(t, strings.Repeat("q", 280)+Ellipsis, doc.Find(".caption").Text())
}

func TestRenderHTML_TwitterInlineActions(t *testing.T) {
	doc := renderDoc(t, models.PlatformTwitter, Content{Caption: "gm", MediaURL: "https://cdn.example.com/p.png"})

	var labels []string
	doc.Find("article.twitter .action").Each(func(_ int, s *goquery.Selection) {
		labels = append(labels, strings.TrimSpace(s.Text()))
	})
	assert.Equal(t, []string{"Reply", "Repost", "Like"}, labels)
	assert.Equal(t, "Your Name", doc.Find(".display-name").Text())
	assert.Equal(t, 1, doc.Find(".media.rounded-2xl img").Length())
}

func TestRenderHTML_InstagramMediaBeforeCaption(t *testing.T) {
	doc := renderDoc(t, models.PlatformInstagram, Content{Caption: "new drop", MediaURL: "https://cdn.example.com/sq.jpg"})

	article := doc.Find("article.instagram")
	require.Equal(t, 1, article.Length())
	children := article.Children()
	assert.True(t, children.Eq(1).HasClass("aspect-square"), "media should follow the header")

	src, ok := article.Find(".media img").Attr("src")
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example.com/sq.jpg", src)
	assert.Equal(t, 3, article.Find(".action").Length())
	assert.Empty(t, strings.TrimSpace(article.Find(".actions").Text()))
}

func TestRenderHTML_YouTubeThumbnailAndTitle(t *testing.T) {
	doc := renderDoc(t, models.PlatformYouTube, Content{Caption: "Tour\nDetails", MediaURL: "https://cdn.example.com/thumb.jpg"})

	assert.Equal(t, 1, doc.Find(".aspect-video .play-overlay").Length())
	assert.Equal(t, "Tour", doc.Find(".video-title").Text())
	assert.Equal(t, "1.2K views", doc.Find(".views").Text())
	assert.Equal(t, 1, doc.Find("p.caption").Length())

	empty := renderDoc(t, models.PlatformYouTube, Content{})
	assert.Equal(t, "Video Title", empty.Find(".video-title").Text())
	assert.Equal(t, 0, empty.Find("p.caption").Length())
	assert.Equal(t, 0, empty.Find(".media").Length())
}

func TestRenderHTML_FeedCards(t *testing.T) {
	li := renderDoc(t, models.PlatformLinkedIn, Content{Caption: "hiring"})
	assert.Equal(t, "Following", li.Find("article.linkedin .badge").Text())
	assert.Equal(t, "Your Company", li.Find(".profile-name").Text())

	fb := renderDoc(t, models.PlatformFacebook, Content{Caption: "event"})
	assert.Equal(t, "Your Page", fb.Find("article.facebook .profile-name").Text())
	assert.Contains(t, fb.Find(".actions").Text(), "Share")
}

func TestRenderHTML_EscapesCaption(t *testing.T) {
	html, err := RenderHTML(models.PlatformLinkedIn, Content{Caption: "<script>alert(1)</script>"})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

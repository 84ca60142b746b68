package services_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Lawrencium-103/Linky-V2/internal/services"
)

func TestShareURLs(t *testing.T) {
	urls := services.ShareURLs("Check out my post & more")

	assert.Len(t, urls, 3)
	assert.True(t, strings.HasPrefix(urls["linkedin"], "https://www.linkedin.com/sharing/share-offsite/"))
	assert.True(t, strings.HasPrefix(urls["facebook"], "https://www.facebook.com/sharer/sharer.php"))

	parsed, err := url.Parse(urls["twitter"])
	assert.NoError(t, err)
	assert.Equal(t, "Check out my post & more", parsed.Query().Get("text"))
}

func TestShareURLs_TruncatesLongTweet(t *testing.T) {
	long := strings.Repeat("a", 400)
	urls := services.ShareURLs(long)

	parsed, err := url.Parse(urls["twitter"])
	assert.NoError(t, err)

	text := parsed.Query().Get("text")
	assert.Len(t, text, 280)
	assert.True(t, strings.HasSuffix(text, "..."))
}

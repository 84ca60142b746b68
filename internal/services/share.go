package services

import "net/url"

const tweetMaxLen = 280

// ShareURLs builds pre-filled share links for the generated text.
// LinkedIn and Facebook only accept a URL parameter, so those links open
// the share dialog for the app itself; Twitter carries the text, truncated
// to its length limit.
func ShareURLs(text string) map[string]string {
	appURL := "https://linky-app.local"

	tweet := text
	if runes := []rune(tweet); len(runes) > tweetMaxLen {
		tweet = string(runes[:tweetMaxLen-3]) + "..."
	}

	return map[string]string{
		"linkedin": "https://www.linkedin.com/sharing/share-offsite/?url=" + url.QueryEscape(appURL),
		"twitter":  "https://twitter.com/intent/tweet?text=" + url.QueryEscape(tweet),
		"facebook": "https://www.facebook.com/sharer/sharer.php?u=" + url.QueryEscape(appURL),
	}
}

package book

import (
	"fmt"
	"html"

	"github.com/zmarkan/handbook-epub/internal/gitinfo"
)

// creditsPage is the front page placed right after the cover.
func creditsPage(title, editionLabel, buildDate, repoURL, liveURL string, git gitinfo.Info) string {
	commit := html.EscapeString(git.Short)
	if git.Known() && git.CommitURL != "" {
		commit = fmt.Sprintf(`<a href="%s" style="font-family: monospace;">%s</a>`,
			git.CommitURL, html.EscapeString(git.Short))
	}

	return fmt.Sprintf(`
<div style="text-align: center; margin-top: 6em; margin-bottom: 2em;">
    <h1 style="font-size: 2em; margin-bottom: 0.2em;">%[1]s</h1>
    <p style="font-size: 1.3em; color: #F7A501; font-weight: bold; margin-bottom: 1.5em;">%[2]s</p>
</div>

<hr style="width: 40%%; margin: 0 auto 2em; border-color: #e5e7eb;" />

<div style="text-align: center; font-size: 0.85em; color: #9ca3af; line-height: 2;">
    <p>Written by the humans and hedgehogs of PostHog</p>
    <p>Compiled and ebookified by Zan Markan</p>
    <p style="font-style: italic; margin-top: 0.5em;">No hedgehog habitat was destroyed during the making or printing of this ebook.</p>
</div>

<hr style="width: 40%%; margin: 0 auto 2em; border-color: #e5e7eb;" />

<div style="text-align: center; font-size: 0.85em; color: #9ca3af; line-height: 2;">
    <p>Source: <a href="%[3]s">%[3]s</a></p>
    <p>Commit: %[4]s &middot; %[5]s</p>
    <p>Built: %[7]s</p>
</div>

<div style="text-align: center; margin-top: 3em; font-size: 0.8em; color: #6b7280;">
    <p>Handbook content is &copy; PostHog. This is an unofficial community build.</p>
    <p>For the live version, visit <a href="%[6]s">%[6]s</a>.</p>
</div>
`,
		html.EscapeString(title),
		html.EscapeString(editionLabel),
		repoURL,
		commit,
		html.EscapeString(git.DateHuman),
		liveURL,
		html.EscapeString(buildDate),
	)
}

// partDividerPage opens a part: big numeral, subtitle, optional blurb.
func partDividerPage(title, subtitle, blurb string) string {
	page := fmt.Sprintf(`
<div class="part-title">%s</div>
<div class="part-subtitle">%s</div>
`, html.EscapeString(title), html.EscapeString(subtitle))
	if blurb != "" {
		page += fmt.Sprintf(`<p style="text-align: center; color: #6b7280;">%s</p>`+"\n",
			html.EscapeString(blurb))
	}
	return page
}

// colophonPage closes the book with provenance details.
func colophonPage(editionLabel, repoURL, liveURL string, git gitinfo.Info) string {
	commit := html.EscapeString(git.Short)
	if git.Known() && git.CommitURL != "" {
		commit = fmt.Sprintf(`<a href="%s" style="font-family: monospace;">%s</a>`,
			git.CommitURL, html.EscapeString(git.Short))
	}

	return fmt.Sprintf(`<h1>Colophon</h1>
<p><strong>%[1]s</strong></p>
<p>Built from commit %[2]s (%[3]s).</p>
<p>The handbook content is &copy; PostHog and is available under their
<a href="%[4]s/blob/master/LICENSE">repository license</a>.</p>
<p>This is an unofficial community build. For the live version,
visit <a href="%[5]s">%[5]s</a>.</p>
<p>Some interactive elements, images, and embedded components from
the web version may not render in this format.</p>
`,
		html.EscapeString(editionLabel),
		commit,
		html.EscapeString(git.DateHuman),
		repoURL,
		liveURL,
	)
}

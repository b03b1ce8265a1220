package web

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const landingHTML = `<!DOCTYPE html>
<html>
<head><title>Nomen</title></head>
<body>
<h1>Nomen</h1>
<p>Names on Bitcoin, data on Nostr.</p>
<p>Nomen binds human-readable names to public keys. Ownership is anchored on
the Bitcoin blockchain; the data behind each name travels over Nostr relays.</p>
<ul>
<li><a href="/explorer">Explorer</a></li>
<li><a href="/faqs">FAQs</a></li>
</ul>
</body>
</html>`

const faqsHTML = `<!DOCTYPE html>
<html>
<head><title>Nomen FAQs</title></head>
<body>
<h1>FAQs</h1>
<h2>What is Nomen?</h2>
<p>A decentralized naming protocol. A name is claimed by publishing an anchor
in a Bitcoin OP_RETURN output and expanding it with a Nostr event.</p>
<h2>Who owns a name?</h2>
<p>The first claim the indexer accepts: a signed Nostr create event backed by a
confirmed on-chain anchor, applied oldest first. Later claims for the same name
are ignored.</p>
<h2>How fresh is this index?</h2>
<p>The indexer trails the chain tip by a few confirmations to stay clear of
reorgs, and rescans relays on a fixed delay.</p>
</body>
</html>`

func (w *Web) Landing(c echo.Context) error {
	return c.HTML(http.StatusOK, landingHTML)
}

func (w *Web) Faqs(c echo.Context) error {
	return c.HTML(http.StatusOK, faqsHTML)
}

package contentserver

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"regexp"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/mpyw/pake/internal/inject"
)

var scriptCloser = regexp.MustCompile(`(?i)</script`)

// scriptText returns the element text of s, with closing tags escaped.
func scriptText(s inject.Script) string {
	return scriptCloser.ReplaceAllString(s.Body, `<\/script`)
}

// InjectHTML inserts scripts as inline elements right after the opening head
// tag, so they run before any script of the page. Without a head tag the
// scripts go after the html tag, or before the first element.
func InjectHTML(doc []byte, scripts []inject.Script) []byte {
	if len(scripts) == 0 {
		return doc
	}

	var block bytes.Buffer
	for _, s := range scripts {
		block.WriteString(`<script data-pake="`)
		block.WriteString(html.EscapeString(s.Name))
		block.WriteString(`">`)
		block.WriteString(scriptText(s))
		block.WriteString("</script>")
	}

	at := insertionPoint(doc)
	out := make([]byte, 0, len(doc)+block.Len())
	out = append(out, doc[:at]...)
	out = append(out, block.Bytes()...)
	out = append(out, doc[at:]...)
	return out
}

func insertionPoint(doc []byte) int {
	z := html.NewTokenizer(bytes.NewReader(doc))
	offset, afterHTML := 0, -1

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return max(afterHTML, 0)
		}

		start := offset
		offset += len(z.Raw())

		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}

		name, _ := z.TagName()
		switch atom.Lookup(name) {
		case atom.Head:
			return offset
		case atom.Html:
			afterHTML = offset
		default:
			if afterHTML >= 0 {
				return afterHTML
			}
			return start
		}
	}
}

// ScriptHashes returns CSP source expressions matching the injected elements.
func ScriptHashes(scripts []inject.Script) []string {
	return lo.Map(scripts, func(s inject.Script, _ int) string {
		sum := sha256.Sum256([]byte(scriptText(s)))
		return "'sha256-" + base64.StdEncoding.EncodeToString(sum[:]) + "'"
	})
}

// AllowScripts extends a Content-Security-Policy so that the injected
// scripts may run. Policies that already allow inline scripts, or that do
// not restrict scripts at all, are returned unchanged.
func AllowScripts(policy string, hashes []string) string {
	directives := strings.Split(policy, ";")

	patched := false
	for i, d := range directives {
		fields := strings.Fields(d)
		if len(fields) == 0 {
			continue
		}
		switch strings.ToLower(fields[0]) {
		case "script-src", "script-src-elem":
			lead := d[:len(d)-len(strings.TrimLeft(d, " \t"))]
			directives[i] = lead + allowIn(fields, hashes)
			patched = true
		}
	}
	if patched {
		return strings.Join(directives, ";")
	}

	// script-src falls back to default-src.
	for _, d := range directives {
		fields := strings.Fields(d)
		if len(fields) == 0 || !strings.EqualFold(fields[0], "default-src") {
			continue
		}
		derived := append([]string{"script-src"}, fields[1:]...)
		return strings.TrimRight(policy, "; ") + "; " + allowIn(derived, hashes)
	}

	return policy
}

func allowIn(fields []string, hashes []string) string {
	sources := fields[1:]

	inlineAllowed := lo.ContainsBy(sources, func(s string) bool { return strings.EqualFold(s, "'unsafe-inline'") })
	hashed := lo.ContainsBy(sources, func(s string) bool {
		s = strings.ToLower(s)
		return strings.HasPrefix(s, "'nonce-") || strings.HasPrefix(s, "'sha")
	})
	if inlineAllowed && !hashed {
		return strings.Join(fields, " ")
	}

	sources = lo.Reject(sources, func(s string, _ int) bool { return strings.EqualFold(s, "'none'") })
	return strings.Join(append(append([]string{fields[0]}, sources...), hashes...), " ")
}

// Package upload rewrites local and foreign image references in a document
// to URLs on the configured object storage. Candidates are discovered against
// the buffer's reference snapshot and replacements are applied back-to-front
// through the mutation engine, exactly like any structural pass.
package upload

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/mdtidy/internal/logging"
	"github.com/yaklabco/mdtidy/pkg/config"
	"github.com/yaklabco/mdtidy/pkg/textedit"
)

// imageRE locates inline image references and captures the destination span.
var imageRE = regexp.MustCompile(`!\[[^\]]*\]\((?P<dest>[^()\s]+)\)`)

// Uploader stores one image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, source string) (string, error)
}

// Candidate is one image reference found in the buffer: the destination span
// in reference coordinates plus its literal URL text.
type Candidate struct {
	Span textedit.Span
	URL  string
}

// Rewriter applies the upload rewrite to buffers. The failed-URL memory is
// session scoped: it lives exactly as long as the Rewriter instance and is
// never persisted. The mutex makes that memory safe to share when the runner
// formats files concurrently.
type Rewriter struct {
	uploader Uploader
	cfg      config.UploadConfig

	mu     sync.Mutex
	failed map[string]struct{}
}

// NewRewriter creates a rewriter around the given uploader.
func NewRewriter(uploader Uploader, cfg config.UploadConfig) *Rewriter {
	return &Rewriter{
		uploader: uploader,
		cfg:      cfg,
		failed:   make(map[string]struct{}),
	}
}

// Candidates returns the image references in the buffer that are eligible
// for upload, in document order. Spans come from the engine's matcher;
// goldmark's AST confirms each destination is a real image reference rather
// than a lookalike inside a code block.
func (r *Rewriter) Candidates(b *textedit.Buffer) []Candidate {
	matches := b.Match(imageRE)
	if len(matches) == 0 {
		return nil
	}

	confirmed := imageDestinations(b.String())

	var cands []Candidate
	for _, m := range matches {
		span, ok := m.Named["dest"]
		if !ok {
			continue
		}
		url := b.String()[span.Start:span.End]
		if _, ok := confirmed[url]; !ok {
			continue
		}
		if r.Skip(url) {
			continue
		}
		cands = append(cands, Candidate{Span: span, URL: url})
	}
	return cands
}

// Skip reports whether a URL must not be uploaded: already on the configured
// domain or bucket host, or marked failed earlier in this session.
func (r *Rewriter) Skip(url string) bool {
	r.mu.Lock()
	_, failed := r.failed[url]
	r.mu.Unlock()
	if failed {
		return true
	}
	if r.cfg.CustomDomain != "" && strings.Contains(url, r.cfg.CustomDomain) {
		return true
	}
	host := fmt.Sprintf("%s.cos.%s.myqcloud.com", r.cfg.Bucket, r.cfg.Region)
	return r.cfg.Bucket != "" && strings.Contains(url, host)
}

// Rewrite uploads every eligible candidate and splices the replacement URLs
// into the buffer back-to-front, threading the cursor. A failed upload marks
// the URL for the rest of the session and yields no replacement for that
// candidate; the pass continues with the others.
func (r *Rewriter) Rewrite(ctx context.Context, b *textedit.Buffer, cur textedit.Cursor) (textedit.Cursor, error) {
	b.Checkpoint()

	cands := r.Candidates(b)

	type replacement struct {
		span textedit.Span
		url  string
	}
	var repls []replacement

	// Uploads complete (success or failure) before anything is spliced;
	// partial results never touch the buffer.
	for _, c := range cands {
		url, err := r.uploader.Upload(ctx, c.URL)
		if err != nil {
			logging.Default().Warn("image upload failed",
				logging.FieldURL, c.URL, logging.FieldError, err)
			r.mu.Lock()
			r.failed[c.URL] = struct{}{}
			r.mu.Unlock()
			continue
		}
		repls = append(repls, replacement{span: c.Span, url: url})
	}

	var err error
	for i := len(repls) - 1; i >= 0; i-- {
		cur, err = b.Update(repls[i].span.Start, repls[i].span.End, repls[i].url, cur)
		if err != nil {
			return cur, err
		}
	}
	return cur, nil
}

// imageDestinations parses text with goldmark and collects the destination
// of every image node.
func imageDestinations(src string) map[string]struct{} {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader([]byte(src)))

	dests := make(map[string]struct{})
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if img, ok := n.(*ast.Image); ok {
			dests[string(img.Destination)] = struct{}{}
		}
		return ast.WalkContinue, nil
	})
	return dests
}

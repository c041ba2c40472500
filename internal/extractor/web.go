package extractor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/config"
	"github.com/Aswin-2654/Summarize-Translate-A-Smart-Web-Application/internal/logger"
)

const (
	maxPageBytes = 10 << 20
	// articles shorter than this are re-read from <p> elements
	minArticleChars = 100
	// a class-named content div must hold more text than this
	minContentDivChars = 200

	noiseSelector      = "script, style, nav, header, footer"
	contentDivSelector = "div.content, div.article, div.post, div.entry, div.main-content"
)

var reNoiseImage = regexp.MustCompile(`icon|logo|avatar|banner|ad|pixel|tracking`)

type implWeb struct {
	cfg    config.ExtractConfig
	client *http.Client
	logger logger.Logger
}

func (w *implWeb) Extract(ctx context.Context, rawURL string) (*Document, error) {
	pageURL, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || pageURL.Scheme == "" || pageURL.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}

	body, err := w.fetch(ctx, pageURL.String())
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}

	var text, articleHTML, leadImage string
	article, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err != nil {
		w.logger.Warn(ctx, "Readability failed on %s: %v", pageURL, err)
	} else {
		text = strings.TrimSpace(article.TextContent)
		articleHTML = article.Content
		leadImage = article.Image
	}

	page, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}
	page.Find(noiseSelector).Remove()

	if len(text) <= minArticleChars {
		text = paragraphText(mainContent(page))
		w.logger.Debug(ctx, "Content extracted from paragraphs")
	} else {
		w.logger.Debug(ctx, "Content extracted using readability")
	}

	if len(strings.TrimSpace(text)) < w.cfg.MinContentChars {
		return nil, fmt.Errorf("%w from the provided URL", ErrNoContent)
	}

	images := w.images(page, articleHTML, leadImage, pageURL)
	w.logger.Debug(ctx, "Extracted %d images from URL", len(images))

	return &Document{
		SourceType: SourceURL,
		SourceName: pageURL.String(),
		Text:       text,
		Images:     images,
	}, nil
}

func (w *implWeb) fetch(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", w.cfg.UserAgent)

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
}

// images prefers pictures inside the article, then the page's lead image,
// then any large or unlabelled picture on the page.
func (w *implWeb) images(page *goquery.Document, articleHTML, leadImage string, base *url.URL) []string {
	var found []string
	add := func(src string) {
		if len(found) >= w.cfg.MaxImages {
			return
		}
		if abs := resolve(base, src); abs != "" {
			found = append(found, abs)
		}
	}

	content := page.Find("article").First()
	if content.Length() == 0 && articleHTML != "" {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(articleHTML)); err == nil {
			content = doc.Selection
		}
	}
	content.Find("img[src]").Each(func(_ int, img *goquery.Selection) {
		src := img.AttrOr("src", "")
		if !strings.HasPrefix(src, "data:") && !reNoiseImage.MatchString(strings.ToLower(resolve(base, src))) {
			add(src)
		}
	})

	if len(found) == 0 {
		if og, ok := page.Find(`meta[property="og:image"]`).First().Attr("content"); ok && og != "" {
			add(og)
		} else if leadImage != "" {
			add(leadImage)
		}
	}

	if len(found) == 0 {
		page.Find("img[src]").Each(func(_ int, img *goquery.Selection) {
			src := img.AttrOr("src", "")
			if strings.HasPrefix(src, "data:") {
				return
			}
			rawW, hasW := img.Attr("width")
			rawH, hasH := img.Attr("height")
			width, wErr := strconv.Atoi(rawW)
			height, hErr := strconv.Atoi(rawH)
			sized := wErr == nil && hErr == nil && width > 200 && height > 200
			unlabelled := !hasW && !hasH && !reNoiseImage.MatchString(strings.ToLower(src))
			if sized || unlabelled {
				add(src)
			}
		})
	}

	return found
}

func resolve(base *url.URL, src string) string {
	ref, err := url.Parse(strings.TrimSpace(src))
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// mainContent picks the block holding the article: an <article>, then a
// div with a content-like class and enough text, then the div with the
// most paragraphs, then the whole page.
func mainContent(page *goquery.Document) *goquery.Selection {
	if article := page.Find("article").First(); article.Length() > 0 {
		return article
	}

	var named *goquery.Selection
	page.Find(contentDivSelector).EachWithBreak(func(_ int, div *goquery.Selection) bool {
		if utf8.RuneCountInString(strings.TrimSpace(div.Text())) > minContentDivChars {
			named = div
			return false
		}
		return true
	})
	if named != nil {
		return named
	}

	var densest *goquery.Selection
	most := 0
	page.Find("div").Each(func(_ int, div *goquery.Selection) {
		if n := div.Find("p").Length(); n > most {
			densest, most = div, n
		}
	})
	if densest != nil {
		return densest
	}
	return page.Selection
}

// paragraphText joins the text of every <p> in scope with single spaces.
func paragraphText(scope *goquery.Selection) string {
	var parts []string
	scope.Find("p").Each(func(_ int, p *goquery.Selection) {
		if t := strings.TrimSpace(p.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

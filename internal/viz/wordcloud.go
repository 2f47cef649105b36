package viz

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/fogleman/gg"

	"nitterlens/internal/types"
)

const (
	cloudWidth  = 800
	cloudHeight = 400

	cloudMaxWords = 60
	cloudMinFont  = 14
	cloudMaxFont  = 52
)

var wordPattern = regexp.MustCompile(`[A-Za-z][A-Za-z']+`)

// stopwords excluded from the cloud. Kept short on purpose; the point is to
// drop glue words, not to do real text processing.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "her": true,
	"was": true, "one": true, "our": true, "out": true, "has": true,
	"have": true, "this": true, "that": true, "with": true, "they": true,
	"will": true, "from": true, "been": true, "were": true, "their": true,
	"about": true, "would": true, "there": true, "what": true, "when": true,
	"your": true, "just": true, "like": true, "more": true, "some": true,
	"than": true, "them": true, "then": true, "into": true, "over": true,
}

var cloudPalette = [][3]float64{
	{0.12, 0.47, 0.71},
	{1.00, 0.50, 0.05},
	{0.17, 0.63, 0.17},
	{0.84, 0.15, 0.16},
	{0.58, 0.40, 0.74},
	{0.55, 0.34, 0.29},
}

// WordCloud draws a frequency-sized word cloud of the batch's content to
// {dir}/{handle}_wordcloud.png and returns the path. Returns ("", nil)
// when there are no usable words.
func (r *Renderer) WordCloud(dir, handle string, posts []types.Post) (string, error) {
	words := wordFrequencies(posts)
	if len(words) == 0 {
		r.log.Info("no words for word cloud", "handle", handle)
		return "", nil
	}
	if len(words) > cloudMaxWords {
		words = words[:cloudMaxWords]
	}

	if err := ensureDir(dir); err != nil {
		return "", err
	}

	dc := gg.NewContext(cloudWidth, cloudHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	maxCount := words[0].count
	minCount := words[len(words)-1].count

	x, y := 20.0, 20.0
	rowHeight := 0.0

	for i, w := range words {
		size := fontSizeFor(w.count, minCount, maxCount)
		if !r.setFont(dc, size) {
			// Bitmap fallback, uniform size.
			size = 13
		}

		tw, th := dc.MeasureString(w.text)
		if x+tw > cloudWidth-20 {
			x = 20
			y += rowHeight + 10
			rowHeight = 0
		}
		if y+th > cloudHeight-20 {
			break
		}

		c := cloudPalette[i%len(cloudPalette)]
		dc.SetRGB(c[0], c[1], c[2])
		dc.DrawString(w.text, x, y+th)

		x += tw + 14
		if th > rowHeight {
			rowHeight = th
		}
	}

	path := filepath.Join(dir, handle+"_wordcloud.png")
	if err := dc.SavePNG(path); err != nil {
		return "", err
	}

	r.log.Info("saved word cloud", "path", path)
	return path, nil
}

type wordCount struct {
	text  string
	count int
}

// wordFrequencies tallies content words across the batch, most frequent
// first, with URLs, short words, and stopwords dropped.
func wordFrequencies(posts []types.Post) []wordCount {
	counts := make(map[string]int)
	var order []string

	for _, p := range posts {
		for _, tok := range strings.Fields(p.Content) {
			if strings.HasPrefix(tok, "http://") || strings.HasPrefix(tok, "https://") {
				continue
			}
			for _, word := range wordPattern.FindAllString(tok, -1) {
				word = strings.ToLower(word)
				if len(word) < 3 || stopwords[word] {
					continue
				}
				if counts[word] == 0 {
					order = append(order, word)
				}
				counts[word]++
			}
		}
	}

	out := make([]wordCount, 0, len(order))
	for _, w := range order {
		out = append(out, wordCount{text: w, count: counts[w]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].count > out[j].count })
	return out
}

func fontSizeFor(count, minCount, maxCount int) float64 {
	if maxCount == minCount {
		return (cloudMinFont + cloudMaxFont) / 2
	}
	frac := float64(count-minCount) / float64(maxCount-minCount)
	return cloudMinFont + frac*(cloudMaxFont-cloudMinFont)
}

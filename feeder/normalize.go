package feeder

import (
	"strings"
	"time"

	"siris-blog/models"
)

const (
	DefaultAuthor = "Dr. Angela Yu"
	DefaultImage  = "default.jpg"
)

// imageRules is evaluated in order; the first keyword found in the
// lowercased title decides the illustration.
var imageRules = []struct {
	keyword string
	image   string
}{
	{"explore", "explore.jpg"},
	{"heart", "heart2.jpg"},
	{"science", "science.jpg"},
	{"failure", "failure.jpg"},
}

// ImageForTitle returns the keyword illustration for title, or "" when no keyword matches.
func ImageForTitle(title string) string {
	lower := strings.ToLower(title)
	for _, rule := range imageRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.image
		}
	}
	return ""
}

// NormalizeOptions controls how remote records become posts.
type NormalizeOptions struct {
	// Now is stamped onto Date.
	Now time.Time
	// KeepSourceDates keeps a non-empty source date instead of re-stamping it.
	KeepSourceDates bool
}

// Normalize turns a remote record into a Post: date stamped, author and
// image defaulted, then the keyword illustration applied.
func Normalize(rec Record, opts NormalizeOptions) models.Post {
	p := models.Post{
		Title:    strings.TrimSpace(rec.Title),
		Subtitle: rec.Subtitle,
		Author:   strings.TrimSpace(rec.Author),
		Date:     strings.TrimSpace(rec.Date),
		Image:    strings.TrimSpace(rec.Image),
		Body:     rec.Body,
	}

	if !opts.KeepSourceDates || p.Date == "" {
		p.Date = opts.Now.Format(models.DateLayout)
	}
	if p.Author == "" {
		p.Author = DefaultAuthor
	}
	if p.Image == "" {
		p.Image = DefaultImage
	}
	if img := ImageForTitle(p.Title); img != "" {
		p.Image = img
	}
	return p
}

const fallbackBody = "The llama is the largest of the four lamoid species. It averages 120 cm (47 inches) at the shoulder, with most males weighing between 136 and 181.4 kg (300 and 400 pounds) and most females weighing between 104.3 and 158.7 kg (230 and 350 pounds). A 113-kg (250-pound) llama can carry a load of 45–60 kg and average 25 to 30 km (15 to 20 miles) travel a day. The llama’s high thirst tolerance, endurance, and ability to subsist on a wide variety of forage makes it an important transport animal on the bleak Andean plateaus and mountains. The llama is a gentle animal, but, when overloaded or maltreated, it will lie down, hiss, spit and kick, and refuse to move. Llamas breed in the (Southern Hemispheric) late summer and fall, from November to May. The gestation period lasts about 11 months, and the female gives birth to one young. Although usually white, the llama may be solid black or brown, or it may be white with black or brown markings."

// FallbackPost is the static post that is always listed first.
// It bypasses normalization.
func FallbackPost() models.Post {
	return models.Post{
		Title:    "All About Llamas",
		Subtitle: "One of the South American members of Camelidae",
		Author:   "Mojo Jojo",
		Date:     "2023-09-24",
		Image:    "llama.jpg",
		Body:     fallbackBody,
	}
}

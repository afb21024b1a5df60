package render

import (
	"strconv"
	"time"

	"github.com/goliatone/go-sitegen/pkg/site"
)

// BlogDateLayout formats the "Posted on" stamp, e.g. "March 05, 2025".
const BlogDateLayout = "January 02, 2006"

// pageContext carries the values every template can reference. The engine
// converts data through JSON, so numbers are passed as strings to keep them
// from printing as floats.
func pageContext(record site.Record) map[string]any {
	features := record.Features
	if features == nil {
		features = []string{}
	}
	record.Features = features

	links := record.Social.Links()
	if links == nil {
		links = []site.Link{}
	}

	return map[string]any{
		"site":   record,
		"accent": record.AccentColor,
		"links":  links,
	}
}

func businessContext(record site.Record, now time.Time) map[string]any {
	ctx := pageContext(record)
	ctx["year"] = strconv.Itoa(now.Year())
	return ctx
}

func portfolioContext(record site.Record) map[string]any {
	return pageContext(record)
}

func ecommerceContext(record site.Record) map[string]any {
	ctx := pageContext(record)
	ctx["products"] = PlaceholderProducts()
	return ctx
}

func blogContext(record site.Record, now time.Time) map[string]any {
	ctx := pageContext(record)
	ctx["posts"] = SamplePosts()
	ctx["today"] = now.Format(BlogDateLayout)
	return ctx
}

func landingContext(record site.Record) map[string]any {
	return pageContext(record)
}

func restaurantContext(record site.Record, now time.Time) map[string]any {
	ctx := pageContext(record)
	ctx["menu"] = MenuTeaser()
	ctx["year"] = strconv.Itoa(now.Year())
	return ctx
}

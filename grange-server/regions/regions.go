// Package regions exposes the grange parsing layer over HTTP.
package regions

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opengenomics/grange/genomics"
)

// ParsedRegion is the JSON body returned for a parsed mandatory-bounds
// region. Start/End are the normalized pair, Left/Right the original
// orientation, and Text the canonical round-trip form.
type ParsedRegion struct {
	Path     string `json:"path"`
	Start    uint64 `json:"start"`
	End      uint64 `json:"end"`
	Left     uint64 `json:"left"`
	Right    uint64 `json:"right"`
	Inverted bool   `json:"inverted"`
	Interval uint64 `json:"interval"`
	Text     string `json:"text"`
}

// OptionalRegionBody is the JSON body for an optional-bounds region.
// Absent bounds are omitted, as are interval and inverted when either
// bound is missing.
type OptionalRegionBody struct {
	Path     string  `json:"path"`
	Start    *uint64 `json:"start,omitempty"`
	End      *uint64 `json:"end,omitempty"`
	Interval *uint64 `json:"interval,omitempty"`
	Inverted *bool   `json:"inverted,omitempty"`
	Text     string  `json:"text"`
}

// ResolvedRegion is the JSON body for a region resolved against the
// loaded sequence dictionary.
type ResolvedRegion struct {
	RefID uint64 `json:"refId"`
	Start uint64 `json:"start"`
	End   uint64 `json:"end"`
	Len   uint64 `json:"len"`
}

// NewParseHandler builds a gin handler that parses the region query
// parameter with both bounds mandatory. A prefix query parameter, or
// failing that a non-empty defaultPrefix, switches to the
// prefix-normalizing grammar.
func NewParseHandler(defaultPrefix string) func(c *gin.Context) {
	return func(c *gin.Context) {
		r, err := parseString(c, defaultPrefix)
		if err != nil {
			c.String(http.StatusBadRequest, "Error parsing region: %v", err)
			return
		}
		c.JSON(http.StatusOK, ParsedRegion{
			Path:     r.Path(),
			Start:    r.Start(),
			End:      r.End(),
			Left:     r.Left(),
			Right:    r.Right(),
			Inverted: r.Inverted(),
			Interval: r.Interval(),
			Text:     r.String(),
		})
	}
}

// NewOptionalHandler builds a gin handler that parses the region query
// parameter with both bounds optional, accepting bare paths.
func NewOptionalHandler(defaultPrefix string) func(c *gin.Context) {
	return func(c *gin.Context) {
		var (
			r   *genomics.OptionalRegion
			err error
		)
		text := c.Query("region")
		if prefix, ok := queryPrefix(c, defaultPrefix); ok {
			r, err = genomics.ParseOptionalRegionPrefix(text, prefix)
		} else {
			r, err = genomics.ParseOptionalRegion(text)
		}
		if err != nil {
			c.String(http.StatusBadRequest, "Error parsing region: %v", err)
			return
		}

		body := OptionalRegionBody{Path: r.Path, Start: r.Start, End: r.End, Text: r.String()}
		if interval, ok := r.Interval(); ok {
			body.Interval = &interval
		}
		if inverted, ok := r.Inverted(); ok {
			body.Inverted = &inverted
		}
		c.JSON(http.StatusOK, body)
	}
}

// NewResolveHandler builds a gin handler that parses the region query
// parameter and resolves its path through toID. Setting bed=1 converts the
// inclusive 1-based start into a 0-based one before conversion.
func NewResolveHandler(defaultPrefix string, toID genomics.Resolver) func(c *gin.Context) {
	return func(c *gin.Context) {
		r, err := parseString(c, defaultPrefix)
		if err != nil {
			c.String(http.StatusBadRequest, "Error parsing region: %v", err)
			return
		}
		if c.Query("bed") == "1" {
			if err := r.StartMinus(); err != nil {
				c.String(http.StatusBadRequest, "Error converting to 0-based: %v", err)
				return
			}
		}
		region, err := genomics.Convert(r, toID)
		if err != nil {
			c.String(http.StatusBadRequest, "Error resolving region: %v", err)
			return
		}
		c.JSON(http.StatusOK, ResolvedRegion{
			RefID: region.RefID(),
			Start: region.Start(),
			End:   region.End(),
			Len:   region.Len(),
		})
	}
}

// NewHealthHandler builds a gin handler reporting the server session id
// and the size of the loaded dictionary.
func NewHealthHandler(session string, references int) func(c *gin.Context) {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"session":    session,
			"references": references,
		})
	}
}

func parseString(c *gin.Context, defaultPrefix string) (*genomics.StringRegion, error) {
	text := c.Query("region")
	if prefix, ok := queryPrefix(c, defaultPrefix); ok {
		return genomics.ParseStringRegionPrefix(text, prefix)
	}
	return genomics.ParseStringRegion(text)
}

// queryPrefix picks the prefix for this request: an explicit prefix query
// parameter wins (an empty value means strip the default "chr"), otherwise
// a non-empty server-wide prefix applies.
func queryPrefix(c *gin.Context, defaultPrefix string) (string, bool) {
	if prefix, ok := c.GetQuery("prefix"); ok {
		return prefix, true
	}
	if defaultPrefix != "" {
		return defaultPrefix, true
	}
	return "", false
}

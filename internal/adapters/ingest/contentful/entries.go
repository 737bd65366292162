package contentful

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/RodrigoRozasV/contentful-products-api/internal/core/catalog"
	perr "github.com/RodrigoRozasV/contentful-products-api/internal/platform/errors"
)

// maxPageBytes bounds one decoded page
const maxPageBytes = 32 << 20

// entriesPage is the collection envelope returned by /entries
type entriesPage struct {
	Total int                `json:"total"`
	Skip  int                `json:"skip"`
	Limit int                `json:"limit"`
	Items []catalog.RawEntry `json:"items"`
}

// FetchEntries pages through every entry of the configured content type
func (c *Client) FetchEntries(ctx context.Context) ([]catalog.RawEntry, error) {
	var out []catalog.RawEntry
	skip := 0
	for {
		page, err := c.entriesPage(ctx, skip)
		if err != nil {
			c.log.Error().Err(err).Int("skip", skip).Msg("contentful fetch entries failed")
			return nil, err
		}
		out = append(out, page.Items...)
		skip += len(page.Items)
		if len(page.Items) == 0 || skip >= page.Total {
			break
		}
	}
	c.log.Info().
		Int("count", len(out)).
		Str("content_type", c.opts.ContentType).
		Msg("fetched entries from contentful")
	return out, nil
}

func (c *Client) entriesURL(skip int) string {
	q := url.Values{}
	q.Set("content_type", c.opts.ContentType)
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(c.opts.PageSize))
	return fmt.Sprintf("%s/spaces/%s/environments/%s/entries?%s",
		c.opts.BaseURL,
		url.PathEscape(c.opts.SpaceID),
		url.PathEscape(c.opts.Environment),
		q.Encode(),
	)
}

func (c *Client) entriesPage(ctx context.Context, skip int) (entriesPage, error) {
	resp, err := c.Do(ctx, c.entriesURL(skip))
	if err != nil {
		return entriesPage{}, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Msg("contentful close body failed")
		}
	}()

	var page entriesPage
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxPageBytes)).Decode(&page); err != nil {
		return entriesPage{}, perr.Wrapf(err, perr.ErrorCodeJSON, "contentful decode entries page")
	}
	return page, nil
}

package mapping

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/diwise/resource-client/pkg/resources/types"
)

// RequestBuffer is an in memory types.RequestSink that accumulates body
// values and query parameters until the request layer serializes them.
type RequestBuffer struct {
	body   map[string]any
	params []string
}

func NewRequestBuffer() *RequestBuffer {
	return &RequestBuffer{
		body: map[string]any{},
	}
}

func (b *RequestBuffer) SetBodyValue(attributeName string, value any) {
	b.body[attributeName] = value
}

func (b *RequestBuffer) SetQueryParam(name, value string) {
	b.params = append(b.params, fmt.Sprintf("%s=%s", name, url.QueryEscape(value)))
}

func (b *RequestBuffer) Body() ([]byte, error) {
	return json.Marshal(b.body)
}

func (b *RequestBuffer) QueryString() string {
	if len(b.params) == 0 {
		return ""
	}

	return "?" + strings.Join(b.params, "&")
}

// NewJSONBody adapts a raw JSON payload to the types.ResponseBody
// capability that Unpack consumes.
func NewJSONBody(body []byte) types.ResponseBody {
	return jsonBody(body)
}

type jsonBody []byte

func (j jsonBody) DecodeJSON(ctx context.Context, into any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return json.Unmarshal(j, into)
}

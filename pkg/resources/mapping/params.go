package mapping

import (
	"fmt"
	"net/url"
	"strings"
)

type RequestDecoratorFunc func([]string) []string

func Attributes(attrs []string) RequestDecoratorFunc {
	return func(params []string) []string {
		return append(params, fmt.Sprintf("attrs=%s", strings.Join(attrs, ",")))
	}
}

func IDs(ids []string) RequestDecoratorFunc {
	return func(params []string) []string {
		for idx, id := range ids {
			ids[idx] = url.QueryEscape(id)
		}
		return append(params, fmt.Sprintf("id=%s", strings.Join(ids, ",")))
	}
}

func Limit(count uint64) RequestDecoratorFunc {
	return func(params []string) []string {
		return append(params, fmt.Sprintf("limit=%d", count))
	}
}

func Offset(count uint64) RequestDecoratorFunc {
	return func(params []string) []string {
		return append(params, fmt.Sprintf("offset=%d", count))
	}
}

func Types(typeNames []string) RequestDecoratorFunc {
	return func(params []string) []string {
		return append(params, fmt.Sprintf("type=%s", strings.Join(typeNames, ",")))
	}
}

// NewQueryParams combines request decorators into a query string, or an
// empty string if no decorators were supplied.
func NewQueryParams(decorators ...RequestDecoratorFunc) string {
	params := make([]string, 0, 5)
	for _, decorate := range decorators {
		params = decorate(params)
	}

	if len(params) == 0 {
		return ""
	}

	return "?" + strings.Join(params, "&")
}

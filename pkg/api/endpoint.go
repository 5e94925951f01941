package api

import (
	"fmt"
	"net/url"
	"strings"
)

// Endpoint is one static (facade, name) -> (verb, path template) binding.
// Path placeholders are written as {name}.
type Endpoint struct {
	Facade       string
	Name         string
	Method       string
	Path         string
	RequiresAuth bool
}

// Args carries the per-call inputs of an endpoint.
type Args struct {
	Path  map[string]string
	Query url.Values
	Body  any
}

// ID is shorthand for Args with a single "id" path parameter.
func ID(id string) Args {
	return Args{Path: map[string]string{"id": id}}
}

// Params lists the placeholder names of the path template in order.
func (e Endpoint) Params() []string {
	var params []string
	rest := e.Path
	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			return params
		}
		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			return params
		}
		params = append(params, rest[start+1:start+end])
		rest = rest[start+end+1:]
	}
}

// Expand substitutes path parameters and appends the encoded query string.
func (e Endpoint) Expand(args Args) (string, error) {
	path := e.Path
	for _, name := range e.Params() {
		value, ok := args.Path[name]
		if !ok || value == "" {
			return "", fmt.Errorf("%w %q for %s.%s", ErrMissingParam, name, e.Facade, e.Name)
		}
		path = strings.Replace(path, "{"+name+"}", url.PathEscape(value), 1)
	}
	if len(args.Query) > 0 {
		path += "?" + args.Query.Encode()
	}
	return path, nil
}

func (e Endpoint) String() string {
	return fmt.Sprintf("%s.%s %s %s", e.Facade, e.Name, e.Method, e.Path)
}

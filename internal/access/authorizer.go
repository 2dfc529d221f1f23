package access

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/s21platform/broadcast-service/internal/model"
)

// Params holds the values captured by {placeholders} in a channel pattern.
type Params map[string]string

type Decision struct {
	Allowed bool
	// Info is embedded as user_info in presence channel data.
	Info any
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func AllowWith(info any) Decision {
	return Decision{Allowed: true, Info: info}
}

func Deny() Decision {
	return Decision{}
}

type AuthorizerFunc func(ctx context.Context, principal *model.Principal, params Params) (Decision, error)

func (f AuthorizerFunc) CanAccess(ctx context.Context, principal *model.Principal, params Params) (Decision, error) {
	return f(ctx, principal, params)
}

var placeholder = regexp.MustCompile(`\{([^}]*)\}`)

type route struct {
	pattern    string
	re         *regexp.Regexp
	names      []string
	authorizer ChannelAuthorizer
}

// compilePattern turns "orders.{orderID}" into ^orders\.([^.]+)$.
func compilePattern(pattern string) (*route, error) {
	var (
		b     strings.Builder
		names []string
		last  int
	)

	b.WriteString("^")
	for _, loc := range placeholder.FindAllStringSubmatchIndex(pattern, -1) {
		b.WriteString(regexp.QuoteMeta(pattern[last:loc[0]]))
		b.WriteString(`([^.]+)`)
		names = append(names, pattern[loc[2]:loc[3]])
		last = loc[1]
	}
	b.WriteString(regexp.QuoteMeta(pattern[last:]))
	b.WriteString("$")

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("failed to compile channel pattern %q: %w", pattern, err)
	}

	return &route{pattern: pattern, re: re, names: names}, nil
}

func (r *route) match(canonical string) (Params, bool) {
	m := r.re.FindStringSubmatch(canonical)
	if m == nil {
		return nil, false
	}

	params := make(Params, len(r.names))
	for i, name := range r.names {
		params[name] = m[i+1]
	}

	return params, true
}

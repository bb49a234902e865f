package app

import (
	"net/url"
	"strings"
)

const binaryResultParam = "disable_prepared_binary_result"

// postgresDSN is a connection string in URL form
// (postgres://user@host/db?k=v) or keyword form (host=... dbname=...).
type postgresDSN string

// PrepareDSN turns off binary results for prepared statements, which
// poolers in transaction mode do not support, unless the connection string
// already sets the parameter.
func PrepareDSN(raw string, disableBinaryResults bool) string {
	if !disableBinaryResults {
		return raw
	}
	return string(postgresDSN(raw).withDefault(binaryResultParam, "yes"))
}

func (d postgresDSN) asURL() (*url.URL, bool) {
	u, err := url.Parse(strings.TrimSpace(string(d)))
	if err != nil || (u.Scheme != "postgres" && u.Scheme != "postgresql") {
		return nil, false
	}
	return u, true
}

func (d postgresDSN) keywords() map[string]string {
	out := make(map[string]string)
	for _, field := range strings.Fields(string(d)) {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			continue
		}
		out[key] = strings.Trim(value, `"'`)
	}
	return out
}

// withDefault sets key=value unless key is already present.
func (d postgresDSN) withDefault(key, value string) postgresDSN {
	if u, ok := d.asURL(); ok {
		query := u.Query()
		if query.Has(key) {
			return d
		}
		query.Set(key, value)
		u.RawQuery = query.Encode()
		return postgresDSN(u.String())
	}

	trimmed := strings.TrimSpace(string(d))
	if trimmed == "" {
		return d
	}
	if _, set := d.keywords()[key]; set {
		return d
	}
	return postgresDSN(trimmed + " " + key + "=" + value)
}

func (d postgresDSN) databaseName() string {
	if u, ok := d.asURL(); ok {
		return strings.TrimSpace(strings.TrimPrefix(u.Path, "/"))
	}
	return d.keywords()["dbname"]
}

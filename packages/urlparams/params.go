package urlparams

import (
	"regexp"
	"strings"
)

// DefaultUTMKeys are the UTM parameters returned when none are requested.
var DefaultUTMKeys = []string{
	"utm_source",
	"utm_medium",
	"utm_campaign",
	"utm_content",
	"utm_term",
}

const utmPrefix = "utm_"

var paramPattern = regexp.MustCompile(`[^?&]+=[^&]+`)

// Params holds extracted parameters. Keys keep the position of their first
// occurrence; a repeated key takes the last value.
type Params struct {
	keys   []string
	values map[string]string
}

func newParams() *Params {
	return &Params{values: make(map[string]string)}
}

func (p *Params) set(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value of key, or "" when absent.
func (p *Params) Get(key string) string {
	return p.values[key]
}

// Lookup returns the value of key and whether it was present.
func (p *Params) Lookup(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Keys returns the parameter names in order.
func (p *Params) Keys() []string {
	return p.keys
}

// Values returns the parameter values in key order.
func (p *Params) Values() []string {
	out := make([]string, len(p.keys))
	for i, k := range p.keys {
		out[i] = p.values[k]
	}
	return out
}

// Select returns the values of keys in the given order, "" for missing keys.
func (p *Params) Select(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = p.values[k]
	}
	return out
}

func (p *Params) Len() int {
	return len(p.keys)
}

// Extract collects every key=value fragment of rawURL. When decode is set,
// values are passed through DecodeComponent.
func Extract(rawURL string, decode bool) *Params {
	params := newParams()
	for _, fragment := range paramPattern.FindAllString(rawURL, -1) {
		parts := strings.Split(fragment, "=")
		key, value := parts[0], parts[1]
		if decode {
			value = DecodeComponent(value)
		}
		params.set(key, value)
	}
	return params
}

// UTMKey returns key with the utm_ prefix, adding it when missing.
func UTMKey(key string) string {
	if strings.HasPrefix(key, utmPrefix) {
		return key
	}
	return utmPrefix + key
}

// UTMKeys applies UTMKey to each key.
func UTMKeys(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = UTMKey(k)
	}
	return out
}

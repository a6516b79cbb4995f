package config

const (
	// DefaultTimeout is the default fetch timeout in milliseconds
	DefaultTimeout = 30000
	// DefaultMaxRedirects is the default redirect limit
	DefaultMaxRedirects = 10
	// DefaultOutput is the default output format
	DefaultOutput = "console"
)

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Timeout:      DefaultTimeout,
		MaxRedirects: DefaultMaxRedirects,
		Output:       DefaultOutput,
	}
}

// IsDefault returns true if the config matches defaults
func (c *Config) IsDefault() bool {
	defaults := DefaultConfig()
	return c.Timeout == defaults.Timeout &&
		c.FollowRedirects == nil &&
		c.MaxRedirects == defaults.MaxRedirects &&
		c.ValidateSSL == nil &&
		c.Proxy == "" &&
		len(c.Headers) == 0 &&
		c.RateLimit == 0 &&
		c.Output == defaults.Output &&
		c.NoColor == nil &&
		c.Verbose == nil &&
		c.DecodeURI == nil &&
		c.Schema == ""
}

// Sample returns the annotated starter file written by `sheetfn init`.
func Sample() string {
	return `# sheetfn configuration
# Fetch timeout for IMPORTJSON in milliseconds
timeout: 30000
followRedirects: true
maxRedirects: 10
validateSSL: true
# proxy: http://localhost:8080

# Headers sent with every IMPORTJSON request. ${VAR} is read from the
# environment or from --env-file.
headers:
  Accept: application/json
  # Authorization: Bearer ${API_TOKEN}

# Maximum requests per second, 0 for no limit
rateLimit: 0

# console, tsv, csv, json, markdown or html
output: console
noColor: false
verbose: false

# Decode %XX escapes in EXTRACT_PARAMS / EXTRACT_UTM values
decodeURI: true

# Validate IMPORTJSON documents against a JSON schema
# schema: ./schema.json
`
}

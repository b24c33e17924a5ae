// Package commands implements the testrail CLI command groups.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/autoocto/testrail-tools/pkg/testrail"
	"github.com/autoocto/testrail-tools/pkg/trclient"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrURLRequired    = errors.New("TestRail URL is required (use --url, TESTRAIL_URL, or 'testrail login')")
	ErrEmailRequired  = errors.New("email is required (use --email, TESTRAIL_EMAIL, or 'testrail login')")
	ErrAPIKeyRequired = errors.New("API key is required (use --api-key, TESTRAIL_API_KEY, or 'testrail login')")
	ErrNameRequired   = errors.New("name is required")
	ErrTitleRequired  = errors.New("title is required")

	ErrUnknownConfigKey = errors.New("valid keys are url, email, api-key, output")
)

// createClient builds a client from the resolved viper configuration.
func createClient() (testrail.Client, error) {
	baseURL := viper.GetString("url")
	if baseURL == "" {
		return nil, ErrURLRequired
	}

	email := viper.GetString("email")
	if email == "" {
		return nil, ErrEmailRequired
	}

	apiKey := viper.GetString("api-key")
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	config := &testrail.Config{
		BaseURL: baseURL,
		Email:   email,
		APIKey:  apiKey,
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = &stderrLogger{}
	}

	return trclient.New(config)
}

// renderJSON writes v to stdout as indented JSON.
func renderJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

// renderYAML writes v to stdout as YAML.
func renderYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	return encoder.Encode(v)
}

// parseID parses a positional id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", arg, err)
	}

	return id, nil
}

// yesNo renders a boolean the way the tables do.
func yesNo(v bool) string {
	if v {
		return "yes"
	}

	return "no"
}

// pagingHint prints the follow-up hint after a single-page listing.
func pagingHint(p testrail.Pagination) {
	if p.HasNext() {
		fmt.Printf("\nShowing %d of %d. Use --all to fetch every page.\n", p.Offset+p.Limit, p.Size)
	}
}

// stderrLogger is the verbose-mode logger for the HTTP layer.
type stderrLogger struct{}

func (l *stderrLogger) Debug(msg string, fields map[string]interface{}) { l.log("DEBUG", msg, fields) }
func (l *stderrLogger) Info(msg string, fields map[string]interface{})  { l.log("INFO", msg, fields) }
func (l *stderrLogger) Warn(msg string, fields map[string]interface{})  { l.log("WARN", msg, fields) }
func (l *stderrLogger) Error(msg string, fields map[string]interface{}) { l.log("ERROR", msg, fields) }

func (l *stderrLogger) log(level, msg string, fields map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "[%s] %s %v\n", level, msg, fields)
}

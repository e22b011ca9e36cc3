package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/xapi-client/internal/constants"
	"github.com/fivetwenty-io/xapi-client/pkg/xapi"
	"github.com/fivetwenty-io/xapi-client/pkg/xclient"
)

// Output formats.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
)

// CreateClient builds a gateway client from viper configuration. The token
// comes from --token, XAPI_TOKEN, or the X_BEARER_TOKEN environment variable.
func CreateClient() (xapi.Client, error) {
	token := viper.GetString("token")
	if token == "" {
		token = os.Getenv(constants.EnvBearerToken)
	}

	config := &xapi.Config{
		APIEndpoint: viper.GetString("api"),
		BearerToken: token,
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = &hclogAdapter{logger: hclog.New(&hclog.LoggerOptions{
			Name:   "xapi",
			Level:  hclog.Debug,
			Output: os.Stderr,
		})}
	}

	client, err := xclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// OutputFormat resolves the effective output format. When the flag is unset,
// interactive terminals get tables and pipes get JSON.
func OutputFormat() string {
	output := viper.GetString("output")
	if output != "" {
		return output
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		return OutputFormatTable
	}

	return OutputFormatJSON
}

// EncodeJSON writes v to stdout as indented JSON.
func EncodeJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode as JSON: %w", err)
	}

	return nil
}

// EncodeYAML writes v to stdout as YAML.
func EncodeYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode as YAML: %w", err)
	}

	return nil
}

// ParseParam parses one --param KEY=VALUE pair into a dispatch argument.
// Values containing commas become string lists; integer values become ints.
func ParseParam(pair string) (string, interface{}, error) {
	key, value, found := strings.Cut(pair, "=")
	if !found || key == "" {
		return "", nil, fmt.Errorf("%w: %q (expected KEY=VALUE)", ErrInvalidParam, pair)
	}

	if strings.Contains(value, ",") {
		return key, strings.Split(value, ","), nil
	}

	if num, err := strconv.Atoi(value); err == nil {
		return key, num, nil
	}

	return key, value, nil
}

// hclogAdapter adapts hclog.Logger to xapi.Logger.
type hclogAdapter struct {
	logger hclog.Logger
}

func fieldArgs(fields map[string]interface{}) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)
	for key, value := range fields {
		args = append(args, key, value)
	}

	return args
}

func (l *hclogAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fieldArgs(fields)...)
}

func (l *hclogAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fieldArgs(fields)...)
}

func (l *hclogAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fieldArgs(fields)...)
}

func (l *hclogAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fieldArgs(fields)...)
}

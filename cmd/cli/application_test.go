package cli_test

import (
	"testing"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/tabkit/cmd/cli"
	"github.com/temirov/tabkit/internal/merge"
	"github.com/temirov/tabkit/internal/report"
)

func decodeEmbeddedConfiguration(testInstance *testing.T) cli.ApplicationConfiguration {
	testInstance.Helper()

	configurationContent, configurationType := cli.EmbeddedDefaultConfiguration()
	require.Equal(testInstance, "yaml", configurationType)

	rawConfiguration := map[string]any{}
	require.NoError(testInstance, yaml.Unmarshal(configurationContent, &rawConfiguration))

	var configuration cli.ApplicationConfiguration
	require.NoError(testInstance, mapstructure.Decode(rawConfiguration, &configuration))
	return configuration
}

func TestEmbeddedDefaultsMatchCommandDefaults(testInstance *testing.T) {
	configuration := decodeEmbeddedConfiguration(testInstance)

	testCases := []struct {
		name      string
		assertion func(*testing.T)
	}{
		{
			name: "common",
			assertion: func(testInstance *testing.T) {
				require.Equal(testInstance, "info", configuration.Common.LogLevel)
				require.Equal(testInstance, "structured", configuration.Common.LogFormat)
			},
		},
		{
			name: "report",
			assertion: func(testInstance *testing.T) {
				require.Equal(testInstance, report.DefaultConfiguration(), configuration.Tools.Report.Sanitize())
			},
		},
		{
			name: "merge",
			assertion: func(testInstance *testing.T) {
				require.Equal(testInstance, merge.DefaultConfiguration(), configuration.Tools.Merge.Sanitize())
			},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, testCase.assertion)
	}
}

func TestEmbeddedDefaultConfigurationReturnsCopy(testInstance *testing.T) {
	firstContent, _ := cli.EmbeddedDefaultConfiguration()
	require.NotEmpty(testInstance, firstContent)
	firstContent[0] = '#'

	secondContent, _ := cli.EmbeddedDefaultConfiguration()
	require.NotEqual(testInstance, firstContent[0], secondContent[0])
}

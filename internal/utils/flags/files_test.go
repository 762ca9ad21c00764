package flags

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestReadFileFlags(testInstance *testing.T) {
	testCases := []struct {
		name           string
		arguments      []string
		positional     []string
		expectedValues FileFlagValues
	}{
		{
			name:           "flags_only",
			arguments:      []string{"--inputs", "q1.csv", "--inputs", "q2.csv", "--out", " report.xlsx "},
			expectedValues: FileFlagValues{InputPaths: []string{"q1.csv", "q2.csv"}, OutputPath: "report.xlsx"},
		},
		{
			name:           "comma_kept_in_path",
			arguments:      []string{"--inputs", "sales,q1.csv", "--inputs", "q2.csv"},
			expectedValues: FileFlagValues{InputPaths: []string{"sales,q1.csv", "q2.csv"}},
		},
		{
			name:           "positional_arguments_appended",
			arguments:      []string{"--inputs", "q1.csv"},
			positional:     []string{"q2.csv", "  "},
			expectedValues: FileFlagValues{InputPaths: []string{"q1.csv", "q2.csv"}},
		},
		{
			name:           "nothing_provided",
			expectedValues: FileFlagValues{InputPaths: []string{}},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			command := &cobra.Command{Use: "test"}
			BindFileFlags(command, FileFlagDefinitions{InputsUsage: "inputs"})
			require.NoError(testInstance, command.Flags().Parse(testCase.arguments))

			values, readError := ReadFileFlags(command, testCase.positional)
			require.NoError(testInstance, readError)
			require.Equal(testInstance, testCase.expectedValues, values)
		})
	}
}

func TestBindFileFlagsDefaultsOutputUsage(testInstance *testing.T) {
	command := &cobra.Command{Use: "test"}
	BindFileFlags(command, FileFlagDefinitions{InputsUsage: "Input files"})

	outputFlag := command.Flags().Lookup(OutputFlagName)
	require.NotNil(testInstance, outputFlag)
	require.Equal(testInstance, OutputFlagUsage, outputFlag.Usage)
	require.Equal(testInstance, "Input files", command.Flags().Lookup(InputsFlagName).Usage)
}

func TestReadFileFlagsRequiresBoundFlags(testInstance *testing.T) {
	_, readError := ReadFileFlags(&cobra.Command{Use: "test"}, nil)
	require.Error(testInstance, readError)
}

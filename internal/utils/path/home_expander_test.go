package pathutils_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/temirov/tabkit/internal/utils/path"
)

const (
	testHomeDirectoryConstant = "/home/analyst"
)

func TestHomeExpanderExpand(testInstance *testing.T) {
	testCases := []struct {
		name         string
		input        string
		expectedPath string
	}{
		{name: "empty", input: "", expectedPath: ""},
		{name: "absolute", input: "/data/q1.csv", expectedPath: "/data/q1.csv"},
		{name: "relative", input: "data/q1.csv", expectedPath: "data/q1.csv"},
		{name: "tilde_only", input: "~", expectedPath: testHomeDirectoryConstant},
		{name: "tilde_prefix", input: "~/reports/sales.xlsx", expectedPath: filepath.Join(testHomeDirectoryConstant, "reports", "sales.xlsx")},
		{name: "other_user", input: "~other/q1.csv", expectedPath: "~other/q1.csv"},
	}

	expander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
		return testHomeDirectoryConstant, nil
	})

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedPath, expander.Expand(testCase.input))
		})
	}
}

func TestHomeExpanderExpandAllPreservesOrder(testInstance *testing.T) {
	expander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
		return testHomeDirectoryConstant, nil
	})

	expandedPaths := expander.ExpandAll([]string{"~/b.csv", "a.csv"})
	require.Equal(testInstance, []string{filepath.Join(testHomeDirectoryConstant, "b.csv"), "a.csv"}, expandedPaths)
	require.Nil(testInstance, expander.ExpandAll(nil))
}

func TestHomeExpanderLeavesPathWhenHomeUnavailable(testInstance *testing.T) {
	expander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
		return "", errors.New("no home")
	})

	require.Equal(testInstance, "~/q1.csv", expander.Expand("~/q1.csv"))
}

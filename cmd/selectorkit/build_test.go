package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildCommand(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "id with classes",
			args: []string{"build", "--id", "main", "--class", "container", "--class", "editable"},
			want: "#main.container.editable\n",
		},
		{
			name: "attribute with comma is kept whole",
			args: []string{"build", "--element", "a", "--attr", `href$=".png"`, "--attr", `data-x="a,b"`, "--pseudo-class", "focus"},
			want: `a[href$=".png"][data-x="a,b"]:focus` + "\n",
		},
		{
			name: "every flag",
			args: []string{"build", "--pseudo-element", "after", "--element", "p", "--pseudo-class", "hover", "--id", "x"},
			want: "p#x:hover::after\n",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			stdout, _, err := executeCommand(tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, stdout)
		})
	}
}

func TestBuildCommandRequiresFragments(t *testing.T) {
	t.Parallel()

	_, _, err := executeCommand("build")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no fragments given")
}

func TestBuildCommandCheck(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand("build", "--check", "--element", "li", "--pseudo-class", "first-child")
	require.NoError(t, err)
	require.Equal(t, "li:first-child\n", stdout)

	stdout, _, err = executeCommand("build", "--check", "--element", "div[")
	require.Error(t, err)
	require.Empty(t, stdout)
	require.Contains(t, err.Error(), "not understood by the matcher")
}

func TestCombineCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand("combine", "div#main", "+", "table#data")
	require.NoError(t, err)
	require.Equal(t, "div#main + table#data\n", stdout)

	stdout, _, err = executeCommand("combine", "ul", " ", "li")
	require.NoError(t, err)
	require.Equal(t, "ul   li\n", stdout)

	_, _, err = executeCommand("combine", "ul", "li")
	require.Error(t, err)
}

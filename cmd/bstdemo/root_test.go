package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--delete", "5,6", "5", "3", "8", "1", "4", "7", "9", "3"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t,
		"inorder:     1  3  4  7  8  9\n"+
			"preorder:    4  3  1  8  7  9\n"+
			"postorder:   1  3  7  9  8  4\n",
		out.String())
	assert.Contains(t, errOut.String(), "duplicate element ignored")
	assert.Contains(t, errOut.String(), "element not found")
}

func TestRootCmdEnv(t *testing.T) {
	t.Setenv("BSTDEMO_DELETE", "5,6")
	t.Setenv("BSTDEMO_ORDER", "inorder,preorder")

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"5", "3", "8"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t,
		"inorder:     3  8\n"+
			"preorder:    3  8\n",
		out.String())
	assert.Contains(t, errOut.String(), "element not found")

	// flags still win over the environment
	out.Reset()
	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--order", "postorder", "--delete", "8", "5", "3", "8"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "postorder:   3  5\n", out.String())
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, splitList([]string{"1,2", " 3 ", ""}))
	assert.Empty(t, splitList(nil))
}

func TestRootCmdOrder(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--order", "preorder", "2", "1", "3"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "preorder:    2  1  3\n", out.String())
}

func TestRootCmdErrors(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{})
	assert.Error(t, cmd.Execute())

	v := viper.New()
	err := run(io.Discard, io.Discard, v, []string{"1", "x"})
	assert.EqualError(t, err, `invalid element "x": strconv.Atoi: parsing "x": invalid syntax`)

	v.Set(cfgOrder, []string{"levelorder"})
	assert.EqualError(t, run(io.Discard, io.Discard, v, []string{"1"}), `unknown traversal order "levelorder"`)

	v = viper.New()
	v.Set(cfgDelete, []string{"y"})
	assert.Error(t, run(io.Discard, io.Discard, v, []string{"1"}))
}

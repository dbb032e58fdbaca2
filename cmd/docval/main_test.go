package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertocavalcante/docval/brazil"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCPFCommand(t *testing.T) {
	t.Run("valid value", func(t *testing.T) {
		out, err := runCommand(t, "cpf", "123.456.789-09")
		require.NoError(t, err)
		assert.Contains(t, out, "123.456.789-09\tvalid")
	})

	t.Run("invalid value fails the command", func(t *testing.T) {
		out, err := runCommand(t, "cpf", "111.111.111-11")
		require.Error(t, err)
		assert.Contains(t, out, "invalid: all digits are identical")
	})

	t.Run("mixed values report each verdict", func(t *testing.T) {
		out, err := runCommand(t, "cpf", "123.456.789-09", "123.456.789-00")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2 values invalid")
		assert.Contains(t, out, "123.456.789-09\tvalid")
		assert.Contains(t, out, "123.456.789-00\tinvalid: check digits do not match")
	})

	t.Run("quiet suppresses per-value output", func(t *testing.T) {
		out, err := runCommand(t, "cpf", "--quiet", "123.456.789-00")
		require.Error(t, err)
		assert.NotContains(t, out, "\tinvalid")
	})

	t.Run("requires at least one value", func(t *testing.T) {
		_, err := runCommand(t, "cpf")
		assert.Error(t, err)
	})
}

func TestTaxIDCommand(t *testing.T) {
	out, err := runCommand(t, "taxid", "12345678909", "12.345.678/0001-95")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "\tvalid\n"))
}

func TestCNPJCommand(t *testing.T) {
	out, err := runCommand(t, "cnpj", "12.345.678/0001-99")
	require.Error(t, err)
	assert.Contains(t, out, "check digits do not match")
}

func TestValidateAll(t *testing.T) {
	var out bytes.Buffer
	err := validateAll(&out, brazil.CPF, []string{"111.444.777-35", "111.444.777-36"}, false)
	require.Error(t, err)
	assert.Contains(t, out.String(), "111.444.777-35\tvalid")
	assert.Contains(t, out.String(), "111.444.777-36\tinvalid")
}

package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/countrylist/internal/cli"
	"github.com/rshade/countrylist/internal/version"
)

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		assert.NotNil(t, root)
		assert.Equal(t, "countrylist", root.Use)

		names := make([]string, 0, len(root.Commands()))
		for _, c := range root.Commands() {
			names = append(names, c.Name())
		}
		assert.Subset(t, names, []string{"list", "options", "version"})
	})
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 1, exitCode(errors.New("boom")))
}

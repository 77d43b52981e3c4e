package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootRegistersVerbs(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"serve", "quote", "rails"} {
		assert.True(t, names[want], "missing %s command", want)
	}
}

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campfire/webgate/internal/info"
)

func TestRun(t *testing.T) {
	tests := map[string]struct {
		args      []string
		expStdout string
		expErr    bool
	}{
		"Version command should print the version.": {
			args:      []string{"webgate", "version", "--no-log"},
			expStdout: info.Version,
		},

		"Unknown commands should fail.": {
			args:   []string{"webgate", "unknown"},
			expErr: true,
		},

		"Invalid server configuration should fail before starting.": {
			args:   []string{"webgate", "server", "--no-log", "--app-listen-address=:8081", "--status-listen-address=:8081"},
			expErr: true,
		},

		"Invalid logger type should fail.": {
			args:   []string{"webgate", "version", "--logger=xml"},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			var stdout, stderr bytes.Buffer
			err := Run(context.Background(), test.args, nil, &stdout, &stderr)

			if test.expErr {
				assert.Error(err)
			} else if assert.NoError(err) {
				assert.Equal(test.expStdout, stdout.String())
			}
		})
	}
}

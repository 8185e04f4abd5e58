package clierr

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeOf(t *testing.T) {
	assert.Equal(t, 0, ExitCodeOf(nil))
	assert.Equal(t, 1, ExitCodeOf(errors.New("plain")))
	assert.Equal(t, 2, ExitCodeOf(Usagef("bad flag %q", "--x")))
	assert.Equal(t, 1, ExitCodeOf(New(0, "zero is normalized")))
	assert.Equal(t, 2, ExitCodeOf(fmt.Errorf("outer: %w", New(2, "inner"))))
}

func TestWrap(t *testing.T) {
	err := Wrapf(1, os.ErrNotExist, "reading %s", "plan.md")
	assert.Equal(t, "reading plan.md: file does not exist", err.Error())
	assert.ErrorIs(t, err, os.ErrNotExist)

	assert.Equal(t, "just msg", Wrap(3, "just msg", nil).Error())
}

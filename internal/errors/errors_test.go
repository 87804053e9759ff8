package errors

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errExpired = New("challenge expired")

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestWrapKeepsIdentity(t *testing.T) {
	err := Wrap(errExpired, "accept login")

	assert.True(t, Is(err, errExpired))
	assert.True(t, IsAny(err, io.EOF, errExpired))
	assert.False(t, IsAny(err, io.EOF))
	assert.Contains(t, fmt.Sprintf("%+v", err), "errors_test.go")
	assert.Nil(t, Wrap(nil, "nothing"))
}

func TestAsType(t *testing.T) {
	err := Wrapf(&codedError{code: "23505"}, "insert %s", "users")

	coded, ok := AsType[*codedError](err)

	assert.True(t, ok)
	assert.Equal(t, "23505", coded.code)

	_, ok = AsType[*codedError](io.EOF)
	assert.False(t, ok)
}

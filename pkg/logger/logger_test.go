package logger

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	c := qt.New(t)

	l, err := New("debug")
	c.Assert(err, qt.IsNil)
	c.Assert(l.Core().Enabled(zapcore.DebugLevel), qt.IsTrue)

	l, err = New("warn")
	c.Assert(err, qt.IsNil)
	c.Assert(l.Core().Enabled(zapcore.InfoLevel), qt.IsFalse)
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("loud")
	qt.New(t).Assert(err, qt.IsNotNil)
}

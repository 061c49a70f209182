package logger

import (
	"testing"

	"github.com/gookit/slog"
	"github.com/stretchr/testify/assert"

	"siris-blog/logger/loggertest"
)

func TestInitFallsBackToInfo(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	Init("  ")

	_, ok := Log.(*slog.Logger)
	assert.True(t, ok, "expected the gookit logger")
}

func TestWithServiceName(t *testing.T) {
	fields := withServiceName(nil)
	assert.Equal(t, ServiceName, fields["service_name"])

	custom := withServiceName(Fields{"service_name": "worker", "path": "/"})
	assert.Equal(t, "worker", custom["service_name"])
	assert.Equal(t, "/", custom["path"])
}

func TestWithServiceNameMasksPersonalFields(t *testing.T) {
	in := Fields{"Email": "ann@example.com", "phone": "555-0101", "password": 42, "name": "Ann"}
	out := withServiceName(in)

	assert.Equal(t, "a***", out["Email"])
	assert.Equal(t, "5***", out["phone"])
	assert.Equal(t, "***", out["password"])
	assert.Equal(t, "Ann", out["name"])

	assert.Equal(t, "ann@example.com", in["Email"], "caller's map must stay untouched")
	assert.NotContains(t, in, "service_name")
}

func TestWithFieldsFallbackAppendsFields(t *testing.T) {
	prev := Log
	rec := loggertest.New()
	Log = rec
	t.Cleanup(func() { Log = prev })

	WarnWithFields("bad input", Fields{"request_id": "req-7", "email": "ann@example.com"})
	ErrorWithFields("relay down", nil)

	assert.True(t, rec.Contains("warn", "bad input"))
	assert.True(t, rec.Contains("warn", "request_id:req-7"))
	assert.True(t, rec.Contains("warn", "email:a***"))
	assert.False(t, rec.Contains("warn", "ann@example.com"))
	assert.True(t, rec.Contains("error", "service_name:"+ServiceName))
}

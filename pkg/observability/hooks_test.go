package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Pipeline hooks
	p := NoopPipelineHooks{}
	p.OnParseStart(ctx, "quire.toml")
	p.OnParseComplete(ctx, "quire.toml", 12, time.Second, nil)
	p.OnTypesetStart(ctx, 12)
	p.OnTypesetComplete(ctx, 3, time.Second, nil)
	p.OnRenderStart(ctx, []string{"svg"})
	p.OnRenderComplete(ctx, []string{"svg"}, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "document")
	c.OnCacheMiss(ctx, "pages")
	c.OnCacheSet(ctx, "artifact", 1024)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/typeset")
	h.OnResponse(ctx, "POST", "/typeset", 200, time.Second)
	h.OnError(ctx, "POST", "/typeset", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	// Set custom hooks
	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore NoopCacheHooks")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("Reset() should restore NoopHTTPHooks")
	}
}

func TestSetHooksIgnoresNil(t *testing.T) {
	Reset()

	SetPipelineHooks(nil)
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("SetPipelineHooks(nil) should keep existing hooks")
	}

	SetCacheHooks(nil)
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("SetCacheHooks(nil) should keep existing hooks")
	}

	SetHTTPHooks(nil)
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("SetHTTPHooks(nil) should keep existing hooks")
	}
}

func TestHooksRecordEvents(t *testing.T) {
	Reset()
	defer Reset()

	hooks := &testPipelineHooks{}
	SetPipelineHooks(hooks)

	ctx := context.Background()
	Pipeline().OnParseStart(ctx, "doc.toml")
	Pipeline().OnTypesetStart(ctx, 7)
	Pipeline().OnRenderStart(ctx, []string{"svg", "png"})

	if hooks.parseStarts != 1 {
		t.Errorf("parseStarts = %d, want 1", hooks.parseStarts)
	}
	if hooks.typesetStarts != 1 {
		t.Errorf("typesetStarts = %d, want 1", hooks.typesetStarts)
	}
	if hooks.renderStarts != 1 {
		t.Errorf("renderStarts = %d, want 1", hooks.renderStarts)
	}
}

// testPipelineHooks counts pipeline events for assertions.
type testPipelineHooks struct {
	parseStarts   int
	typesetStarts int
	renderStarts  int
}

func (h *testPipelineHooks) OnParseStart(context.Context, string) { h.parseStarts++ }
func (h *testPipelineHooks) OnParseComplete(context.Context, string, int, time.Duration, error) {
}
func (h *testPipelineHooks) OnTypesetStart(context.Context, int) { h.typesetStarts++ }
func (h *testPipelineHooks) OnTypesetComplete(context.Context, int, time.Duration, error) {
}
func (h *testPipelineHooks) OnRenderStart(context.Context, []string) { h.renderStarts++ }
func (h *testPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
}

type testCacheHooks struct{}

func (*testCacheHooks) OnCacheHit(context.Context, string)      {}
func (*testCacheHooks) OnCacheMiss(context.Context, string)     {}
func (*testCacheHooks) OnCacheSet(context.Context, string, int) {}

type testHTTPHooks struct{}

func (*testHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (*testHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (*testHTTPHooks) OnError(context.Context, string, string, error)                 {}

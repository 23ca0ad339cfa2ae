package lib

import "bytes"
import "testing"

func TestFixbuffer(t *testing.T) {
	if buf := Fixbuffer(nil, 10); int64(len(buf)) != 10 {
		t.Errorf("expected %v, got %v", 10, len(buf))
	}
	buf := make([]byte, 0, 100)
	if buf = Fixbuffer(buf, 10); int64(len(buf)) != 10 {
		t.Errorf("expected %v, got %v", 10, len(buf))
	} else if int64(cap(buf)) != 100 {
		t.Errorf("expected %v, got %v", 100, cap(buf))
	}
	if buf = Fixbuffer(buf, 0); int64(len(buf)) != 0 {
		t.Errorf("expected %v, got %v", 0, len(buf))
	}
}

func TestStr2bytes(t *testing.T) {
	if Str2bytes("") != nil {
		t.Errorf("expected nil for empty string")
	}
	if x, y := []byte("hello world"), Str2bytes("hello world"); !bytes.Equal(x, y) {
		t.Errorf("expected %s, got %s", x, y)
	}
}

func TestBytes2str(t *testing.T) {
	if Bytes2str(nil) != "" {
		t.Errorf(`expected ""`)
	}
	if x, y := "hello world", Bytes2str([]byte("hello world")); x != y {
		t.Errorf("expected %v, got %v", x, y)
	}
}

func TestPrettystats(t *testing.T) {
	stats := map[string]interface{}{"a": 10.0, "b": "hello"}
	if x, y := `{"a":10,"b":"hello"}`, Prettystats(stats, false); x != y {
		t.Errorf("expected %v, got %v", x, y)
	}
	out := Prettystats(stats, true)
	if ln := len(out); ln <= len(`{"a":10,"b":"hello"}`) {
		t.Errorf("expected indented stats, got %v", out)
	}
}

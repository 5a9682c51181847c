package envutil

import "testing"

func TestIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_INT", "abc")
	if got := Int("ENVUTIL_TEST_INT", 7); got != 7 {
		t.Fatalf("want=7 got=%d", got)
	}
	t.Setenv("ENVUTIL_TEST_INT", " 42 ")
	if got := Int("ENVUTIL_TEST_INT", 7); got != 42 {
		t.Fatalf("want=42 got=%d", got)
	}
}

func TestBool(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_BOOL", "off")
	if Bool("ENVUTIL_TEST_BOOL", true) {
		t.Fatalf("off should be false")
	}
	t.Setenv("ENVUTIL_TEST_BOOL", "maybe")
	if !Bool("ENVUTIL_TEST_BOOL", true) {
		t.Fatalf("unknown value should yield default")
	}
}

func TestString(t *testing.T) {
	if got := String("ENVUTIL_TEST_UNSET", "x"); got != "x" {
		t.Fatalf("want=x got=%s", got)
	}
}

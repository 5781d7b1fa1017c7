package envutil

import (
	"testing"
	"time"
)

func TestBlankCountsAsUnset(t *testing.T) {
	t.Setenv("READALOUD_TEST_STR", "   ")
	if got := String("READALOUD_TEST_STR", "def", nil); got != "def" {
		t.Fatalf("got=%q want=%q", got, "def")
	}
}

func TestParsers(t *testing.T) {
	t.Setenv("READALOUD_TEST_INT", "42")
	t.Setenv("READALOUD_TEST_BOOL", "yes")
	t.Setenv("READALOUD_TEST_SECS", "90")
	t.Setenv("READALOUD_TEST_LIST", "a, ,b")

	if got := Int("READALOUD_TEST_INT", 1, nil); got != 42 {
		t.Fatalf("Int: got=%d", got)
	}
	if !Bool("READALOUD_TEST_BOOL", false, nil) {
		t.Fatalf("Bool: expected true")
	}
	if got := Seconds("READALOUD_TEST_SECS", time.Second, nil); got != 90*time.Second {
		t.Fatalf("Seconds: got=%s", got)
	}
	if got := List("READALOUD_TEST_LIST", nil, nil); len(got) != 2 || got[1] != "b" {
		t.Fatalf("List: got=%v", got)
	}
}

func TestBadIntFallsBack(t *testing.T) {
	t.Setenv("READALOUD_TEST_INT", "x")
	if got := Int64("READALOUD_TEST_INT", 7, nil); got != 7 {
		t.Fatalf("got=%d want=7", got)
	}
}

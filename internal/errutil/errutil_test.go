package errutil

import "testing"

func TestFirstReturnsFirstNonNil(t *testing.T) {
	e := First(nil, nil, errTest{"boom"}, errTest{"second"})
	if e == nil || e.Error() != "boom" {
		t.Fatalf("expected first non-nil error, got %v", e)
	}
}

func TestAssertPanicsOnFalse(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Assert(false, ...) to panic")
		}
	}()
	Assert(false, "should have panicked")
}

func TestAssertDoesNotPanicOnTrue(t *testing.T) {
	Assert(true, "never shown")
}

type errTest struct{ msg string }

func (e errTest) Error() string { return e.msg }

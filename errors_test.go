package tide

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorLog_Disabled(t *testing.T) {
	log := newErrorLog(0)

	log.record(errors.New("ignored"))

	if got := log.recent(); got != nil {
		t.Errorf("expected nil history from disabled log, got %v", got)
	}
}

func TestErrorLog_KeepsMostRecent(t *testing.T) {
	log := newErrorLog(3)

	for i := 1; i <= 5; i++ {
		log.record(fmt.Errorf("err %d", i))
	}

	got := log.recent()
	if len(got) != 3 {
		t.Fatalf("expected 3 retained errors, got %d", len(got))
	}
	for i, want := range []string{"err 3", "err 4", "err 5"} {
		if got[i].Error() != want {
			t.Errorf("position %d: expected %q, got %q", i, want, got[i].Error())
		}
	}
}

func TestErrorLog_EmptyReturnsNil(t *testing.T) {
	log := newErrorLog(2)

	if got := log.recent(); got != nil {
		t.Errorf("expected nil from empty log, got %v", got)
	}
}

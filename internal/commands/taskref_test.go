package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/Petemir/2do-txt/internal/service"
	"github.com/Petemir/2do-txt/internal/testutil"
)

func TestParseTaskRef_Number(t *testing.T) {
	num, err := ParseTaskRef([]string{"5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != 5 {
		t.Errorf("expected 5, got %d", num)
	}
}

func TestParseTaskRef_MultiDigit(t *testing.T) {
	num, err := ParseTaskRef([]string{"012"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != 12 {
		t.Errorf("expected 12, got %d", num)
	}
}

func TestParseTaskRef_Missing(t *testing.T) {
	_, err := ParseTaskRef(nil)
	if !errors.Is(err, ErrTaskRefRequired) {
		t.Errorf("expected ErrTaskRefRequired, got %v", err)
	}
}

func TestParseTaskRef_Invalid(t *testing.T) {
	for _, ref := range []string{"a1", "-1", "1.5", "", "٣"} {
		_, err := ParseTaskRef([]string{ref})
		if err == nil {
			t.Errorf("expected error for %q", ref)
			continue
		}
		expectedMsg := "invalid task reference: " + ref
		if err.Error() != expectedMsg {
			t.Errorf("expected %q, got %q", expectedMsg, err.Error())
		}
	}
}

func TestParseTaskRef_ExtraArgument(t *testing.T) {
	_, err := ParseTaskRef([]string{"1", "2"})
	if err == nil {
		t.Fatal("expected error for extra argument")
	}
	if err.Error() != "unexpected argument: 2" {
		t.Errorf("expected %q, got %q", "unexpected argument: 2", err.Error())
	}
}

func TestFindTaskByNumber_SkipsCompletedAndBlankLines(t *testing.T) {
	store := testutil.NewFakeStore(nil)
	store.AddFile("/todo.txt", "x Done\n\nFirst\nx Also done\nSecond\n")

	task, err := findTaskByNumber(context.Background(), store, "/todo.txt", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := service.Task{Line: 5, Raw: "Second"}
	if task != want {
		t.Errorf("expected %+v, got %+v", want, task)
	}

	_, err = findTaskByNumber(context.Background(), store, "/todo.txt", 3)
	if !errors.Is(err, ErrTaskOutOfRange) || err.Error() != "task number out of range: 3" {
		t.Errorf("expected out of range error, got %v", err)
	}

	store.ReadFileErr = errors.New("disk gone")
	_, err = findTaskByNumber(context.Background(), store, "/todo.txt", 1)
	if err == nil || errors.Is(err, ErrTaskOutOfRange) {
		t.Errorf("expected read error, got %v", err)
	}
}

package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"github.com/Petemir/2do-txt/internal/service"
)

var (
	// ErrTaskRefRequired indicates no task reference was provided.
	ErrTaskRefRequired = errors.New("task reference required")

	// ErrTaskOutOfRange indicates the task number matches no open task.
	ErrTaskOutOfRange = errors.New("task number out of range")
)

// ParseTaskRef parses the task number from args.
// Task numbers are the 1-based positions shown by the list command.
func ParseTaskRef(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskRefRequired
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("unexpected argument: %s", args[1])
	}

	ref := args[0]
	if !isAllDigits(ref) {
		return 0, fmt.Errorf("invalid task reference: %s", ref)
	}
	num, err := strconv.Atoi(ref)
	if err != nil {
		return 0, fmt.Errorf("invalid task reference: %s", ref)
	}
	return num, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// findTaskByNumber finds an open task by its 1-based number in the file.
func findTaskByNumber(ctx context.Context, store service.TaskStore, path string, num int) (service.Task, error) {
	tasks, err := store.OpenTasks(ctx, path)
	if err != nil {
		return service.Task{}, err
	}
	if num < 1 || num > len(tasks) {
		return service.Task{}, fmt.Errorf("%w: %d", ErrTaskOutOfRange, num)
	}
	return tasks[num-1], nil
}

package notify

import (
	"context"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/Petemir/2do-txt/internal/service"
	"github.com/Petemir/2do-txt/internal/todotxt"
)

// Title is the title of due-task notifications.
const Title = "Task due"

// Desktop shows notifications through the desktop's notification service.
type Desktop struct{}

// Notify implements service.Notifier.
func (Desktop) Notify(ctx context.Context, title, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return beeep.Notify(title, message, "")
}

// DueTask is an open task with a due date of today or earlier.
type DueTask struct {
	Num  int // 1-based position among the open tasks
	Task service.Task
	Due  string
}

// DueTasks returns the open tasks due on or before today.
func DueTasks(tasks []service.Task, today time.Time) []DueTask {
	limit := today.Format(todotxt.DateLayout)
	var due []DueTask
	for i, task := range tasks {
		t := todotxt.Parse(task.Raw)
		if t.Completed {
			continue
		}
		d, ok := t.DueDate()
		if !ok {
			continue
		}
		date := d.Format(todotxt.DateLayout)
		if date > limit {
			continue
		}
		due = append(due, DueTask{Num: i + 1, Task: task, Due: date})
	}
	return due
}

// Send shows one notification per due task and stops at the first failure.
func Send(ctx context.Context, n service.Notifier, due []DueTask) error {
	for _, d := range due {
		if err := n.Notify(ctx, Title, todotxt.Parse(d.Task.Raw).Body); err != nil {
			return err
		}
	}
	return nil
}

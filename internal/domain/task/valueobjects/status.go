package valueobjects

import "fmt"

type TaskStatus string

const (
	TaskToDo       TaskStatus = "ToDo"
	TaskInProgress TaskStatus = "InProgress"
	TaskBlocked    TaskStatus = "Blocked"
	TaskDeclined   TaskStatus = "Declined"
	TaskTesting    TaskStatus = "Testing"
	TaskDone       TaskStatus = "Done"
)

var validTaskStatuses = map[TaskStatus]bool{
	TaskToDo:       true,
	TaskInProgress: true,
	TaskBlocked:    true,
	TaskDeclined:   true,
	TaskTesting:    true,
	TaskDone:       true,
}

func (s TaskStatus) String() string {
	return string(s)
}

func (s TaskStatus) IsValid() bool {
	return validTaskStatuses[s]
}

func (s TaskStatus) IsBlocked() bool {
	return s == TaskBlocked
}

func NewTaskStatus(str string) (TaskStatus, error) {
	s := TaskStatus(str)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid task status: %s", str)
	}
	return s, nil
}

// TestTaskStatus is tracked with its own smaller enum, lowercased on the
// wire for compatibility with the original clients.
type TestTaskStatus string

const (
	TestPending    TestTaskStatus = "pending"
	TestInProgress TestTaskStatus = "inprogress"
	TestPassed     TestTaskStatus = "passed"
	TestFailed     TestTaskStatus = "failed"
	TestBlocked    TestTaskStatus = "blocked"
)

var validTestTaskStatuses = map[TestTaskStatus]bool{
	TestPending:    true,
	TestInProgress: true,
	TestPassed:     true,
	TestFailed:     true,
	TestBlocked:    true,
}

func (s TestTaskStatus) String() string {
	return string(s)
}

func (s TestTaskStatus) IsValid() bool {
	return validTestTaskStatuses[s]
}

func (s TestTaskStatus) IsBlocked() bool {
	return s == TestBlocked
}

func NewTestTaskStatus(str string) (TestTaskStatus, error) {
	s := TestTaskStatus(str)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid test task status: %s", str)
	}
	return s, nil
}

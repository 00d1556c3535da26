package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/thenoetrevino/tarefas/internal/models"
)

var (
	// errInputClosed ends the session when the input reaches EOF or fails
	errInputClosed = errors.New("input closed")

	// errTooManyAttempts aborts a single operation after repeated bad input
	errTooManyAttempts = errors.New("too many invalid attempts")
)

// clearValue is typed during an edit to remove an optional field
const clearValue = "-"

// readLine prints prompt and returns the next input line with surrounding
// whitespace removed.
func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		return "", errInputClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// ask re-prompts until check accepts the answer. The number of attempts is
// bounded by maxAttempts unless it is zero.
func (s *Session) ask(prompt, retryMsg string, check func(string) bool) (string, error) {
	for attempt := 1; ; attempt++ {
		answer, err := s.readLine(prompt)
		if err != nil {
			return "", err
		}
		if check(answer) {
			return answer, nil
		}

		s.warn(retryMsg)
		if s.maxAttempts > 0 && attempt >= s.maxAttempts {
			return "", errTooManyAttempts
		}
	}
}

// askID reads a positive task id
func (s *Session) askID() (int, error) {
	answer, err := s.ask("Task id: ", "Invalid id, enter a positive number.", func(v string) bool {
		id, err := strconv.Atoi(v)
		return err == nil && id > 0
	})
	if err != nil {
		return 0, err
	}
	id, _ := strconv.Atoi(answer)
	return id, nil
}

func isDueDate(v string) bool {
	_, err := time.Parse(models.DueDateLayout, v)
	return err == nil
}

func optionalDueDate(v string) bool {
	return v == "" || isDueDate(v)
}

func optionalPriority(v string) bool {
	if v == "" {
		return true
	}
	_, ok := models.ParsePriority(v)
	return ok
}

func optionalStatus(v string) bool {
	if v == "" {
		return true
	}
	_, ok := models.ParseStatus(v)
	return ok
}

// editedText maps an edit answer to an update field:
// empty keeps the value, "-" clears it, anything else replaces it.
func editedText(answer string) *string {
	switch answer {
	case "":
		return nil
	case clearValue:
		empty := ""
		return &empty
	default:
		return &answer
	}
}

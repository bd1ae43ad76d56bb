package scriptdetect

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"invalid config", fmt.Errorf("%w: bad format", ErrInvalidConfig), ExitConfigError},
		{"root inaccessible", fmt.Errorf("%w: /nope", ErrRootInaccessible), ExitRootInaccessible},
		{"findings present", fmt.Errorf("%w: 3 package(s)", ErrFindingsPresent), ExitFindingsPresent},
		{"unknown flag", errors.New("unknown flag: --bogus"), ExitUsageError},
		{"unknown command", errors.New(`unknown command "scna" for "script-detection"`), ExitUsageError},
		{"too many args", errors.New("accepts at most 1 arg(s), received 2"), ExitUsageError},
		{"unclassified", errors.New("something broke"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

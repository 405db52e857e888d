package errors

import (
	stderrors "errors"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewExitError(New("disk full"), ExitSystem),
			want: "disk full",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitUser),
			want: "exit code 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	err := NewUserError(ErrNotFound, "run ocbundle list")
	if !stderrors.Is(err, ErrNotFound) {
		t.Error("errors.Is should find ErrNotFound through ExitError")
	}

	var exitErr *ExitError
	if !stderrors.As(err, &exitErr) {
		t.Fatal("errors.As should extract *ExitError")
	}
	if exitErr.Suggestion != "run ocbundle list" {
		t.Errorf("Suggestion = %q, want %q", exitErr.Suggestion, "run ocbundle list")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: ExitSuccess},
		{name: "plain error", err: New("boom"), want: ExitUser},
		{name: "user exit error", err: NewUserError(New("bad flag"), ""), want: ExitUser},
		{name: "system exit error", err: NewSystemError(New("io"), ""), want: ExitSystem},
		{
			name: "wrapped exit error",
			err:  Wrap(NewSystemError(New("io"), ""), "writing bundle"),
			want: ExitSystem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

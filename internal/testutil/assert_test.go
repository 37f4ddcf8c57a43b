package testutil

import (
	"fmt"
	"testing"

	"github.com/lgbarn/boardstate-go/internal/chess"
	"github.com/lgbarn/boardstate-go/internal/errors"
)

// These tests exercise the success paths of the assertion helpers; failure
// paths cannot be observed without a fake *testing.T.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42, "value should be %d", 42)
	AssertEqual(t, []int{}, []int(nil))
}

func TestAssertEqual_BoardTypes(t *testing.T) {
	a := MustSquare(t, "e4")
	b, err := chess.NewCoordinate(3, 4)
	AssertNoError(t, err)
	AssertEqual(t, b, a)
	AssertEqual(t, chess.Move{Origin: a, Target: b}, chess.Move{Origin: b, Target: a})
}

func TestAssertSameElements_Success(t *testing.T) {
	AssertSameElements(t, []string{"b", "a", "c"}, []string{"a", "b", "c"})
	AssertSameElements(t, nil, []string{})
}

func TestAssertErrorIs_Success(t *testing.T) {
	err := fmt.Errorf("session abc: %w", errors.ErrSessionNotFound)
	AssertErrorIs(t, err, errors.ErrSessionNotFound)
}

func TestAssertContains_Success(t *testing.T) {
	AssertContains(t, "hello world", "world")
	AssertContains(t, "test", "")
}

func TestAssertTrueFalse_Success(t *testing.T) {
	AssertTrue(t, len("hello") == 5)
	AssertFalse(t, len("hello") == 0)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"square %s", "e4"}, "square e4"},
		{"format multiple", []interface{}{"%s %d %s", "test", 42, "end"}, "test 42 end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMessage(tt.args...)
			if got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestMoveStrings(t *testing.T) {
	moves := []chess.Move{MustMove(t, "g1h3"), MustMove(t, "g1f3")}
	AssertEqual(t, MoveStrings(moves), []string{"g1f3", "g1h3"})
}

func TestMustBoard(t *testing.T) {
	board := MustBoard(t, chess.InitialFEN)
	AssertEqual(t, board.FEN(), chess.InitialFEN)
}

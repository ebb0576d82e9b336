package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/etnz/classwork"
)

func TestEvaluate(t *testing.T) {
	testCases := []struct {
		left, op, right string
		want            string
	}{
		{"1/5", "+", "2/4", "7 / 10"},
		{"1/2", "-", "3/4", "-1 / 4"},
		{"2/3", "*", "3/4", "1 / 2"},
		{"1/2", "/", "1/4", "2 / 1"},
		{"5/2", "//", "1", "2 / 1"},
		{"7/2", "//", "1", "4 / 1"},
		{"-1/2", "<", "1/3", "true"},
		{"1/2", "==", "2/4", "true"},
		{"1/2", "!=", "0.5", "false"},
		{"1/3", ">=", "0.5", "false"},
		{"3", ">", "2", "true"},
		{"1/2", "<=", "1/2", "true"},
	}
	for _, tc := range testCases {
		t.Run(tc.left+tc.op+tc.right, func(t *testing.T) {
			got, err := evaluate(tc.left, tc.op, tc.right)
			if err != nil {
				t.Fatalf("evaluate returned an unexpected error: %v", err)
			}
			if fmt.Sprint(got) != tc.want {
				t.Errorf("%s %s %s = %v, want %s", tc.left, tc.op, tc.right, got, tc.want)
			}
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	testCases := []struct {
		left, op, right string
		wantErr         error
	}{
		{"1/2", "/", "0", classwork.ErrDivisionByZero},
		{"1/0", "+", "1", classwork.ErrDivisionByZero},
		{"one", "+", "1", classwork.ErrValue},
		{"1/2", "+", "0.5", classwork.ErrValue},
		{"1/2", "%", "1", classwork.ErrValue},
	}
	for _, tc := range testCases {
		if _, err := evaluate(tc.left, tc.op, tc.right); !errors.Is(err, tc.wantErr) {
			t.Errorf("evaluate(%s %s %s) error = %v, want %v", tc.left, tc.op, tc.right, err, tc.wantErr)
		}
	}
}

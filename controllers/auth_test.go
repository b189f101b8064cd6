package controllers

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"
)

func TestIsDuplicateKey(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{gorm.ErrDuplicatedKey, true},
		{fmt.Errorf("create staff: %w", gorm.ErrDuplicatedKey), true},
		{errors.New(`ERROR: duplicate key value violates unique constraint "idx_salons_slug" (SQLSTATE 23505)`), true},
		{errors.New(`ERROR: duplicate key value violates unique constraint "idx_staffs_email" (SQLSTATE 23505)`), true},
		{errors.New("connection refused"), false},
		{gorm.ErrRecordNotFound, false},
	}

	for _, tc := range cases {
		if got := isDuplicateKey(tc.err); got != tc.want {
			t.Errorf("isDuplicateKey(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

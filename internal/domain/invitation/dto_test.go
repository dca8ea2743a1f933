package invitation

import (
	"errors"
	"testing"
	"time"

	"github.com/shirayuki-snow/snowschool-backend-go/internal/pkg/validator"
)

func TestCreateRequestValidate(t *testing.T) {
	cases := []struct {
		name      string
		expiresAt string
		wantField string // empty means valid
	}{
		{"valid tomorrow", time.Now().Add(24 * time.Hour).Format(time.RFC3339), ""},
		{"just inside one month", time.Now().Add(MaxExpiryAhead - time.Minute).Format(time.RFC3339), ""},
		{"missing", "", "expiresAt"},
		{"garbage", "next tuesday", "expiresAt"},
		{"date without time", "2026-01-15", "expiresAt"},
		{"in the past", time.Now().Add(-time.Hour).Format(time.RFC3339), "expiresAt"},
		{"just past one month", time.Now().Add(MaxExpiryAhead + time.Hour).Format(time.RFC3339), "expiresAt"},
		{"too far ahead", time.Now().Add(60 * 24 * time.Hour).Format(time.RFC3339), "expiresAt"},
	}

	for _, c := range cases {
		req := CreateRequest{ExpiresAt: c.expiresAt}
		err := req.Validate()
		if c.wantField == "" {
			if err != nil {
				t.Errorf("%s: Validate() = %v, want nil", c.name, err)
			}
			continue
		}
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			t.Errorf("%s: Validate() = %v, want ValidationErrors", c.name, err)
			continue
		}
		if _, ok := errs.ToMap()[c.wantField]; !ok {
			t.Errorf("%s: missing error for field %q in %v", c.name, c.wantField, errs)
		}
	}
}

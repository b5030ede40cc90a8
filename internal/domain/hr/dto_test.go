package hr

import (
	"errors"
	"testing"

	"github.com/talentreach/outreach-backend-go/internal/pkg/validator"
)

func firstFailedField(t *testing.T, err error) string {
	t.Helper()
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	return errs[0].Field
}

func TestCreateRecordRequestValidateOrder(t *testing.T) {
	cases := []struct {
		name      string
		req       CreateRecordRequest
		wantField string
	}{
		{
			name:      "empty payload fails on companyName first",
			req:       CreateRecordRequest{},
			wantField: "companyName",
		},
		{
			name:      "missing hrName",
			req:       CreateRecordRequest{CompanyName: "Acme"},
			wantField: "hrName",
		},
		{
			name:      "missing hrEmail",
			req:       CreateRecordRequest{CompanyName: "Acme", HRName: "Jane"},
			wantField: "hrEmail",
		},
		{
			name:      "malformed hrEmail",
			req:       CreateRecordRequest{CompanyName: "Acme", HRName: "Jane", HREmail: "abc"},
			wantField: "hrEmail",
		},
		{
			name:      "email without dot",
			req:       CreateRecordRequest{CompanyName: "Acme", HRName: "Jane", HREmail: "a@b"},
			wantField: "hrEmail",
		},
		{
			name:      "malformed hrPhone",
			req:       CreateRecordRequest{CompanyName: "Acme", HRName: "Jane", HREmail: "a@b.co", HRPhone: "call-me"},
			wantField: "hrPhone",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			if err == nil {
				t.Fatal("expected validation failure")
			}
			if got := firstFailedField(t, err); got != c.wantField {
				t.Errorf("first failed field = %q, want %q", got, c.wantField)
			}
		})
	}
}

func TestCreateRecordRequestValidateOK(t *testing.T) {
	req := CreateRecordRequest{
		CompanyName: "Acme Corp",
		HRName:      "Jane Doe",
		HREmail:     "JANE@ACME.COM",
		HRPhone:     "+1 (555) 123-4567",
	}
	if err := req.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestUpdateRecordRequestValidate(t *testing.T) {
	badEmail := "not-an-email"
	goodEmail := "a@b.co"
	badPhone := "call-me"
	emptyPhone := ""

	if err := (&UpdateRecordRequest{}).Validate(); err != nil {
		t.Errorf("empty partial should pass, got %v", err)
	}
	if err := (&UpdateRecordRequest{HREmail: &badEmail}).Validate(); err == nil {
		t.Error("bad email should fail")
	}
	if err := (&UpdateRecordRequest{HREmail: &goodEmail}).Validate(); err != nil {
		t.Errorf("good email should pass, got %v", err)
	}
	if err := (&UpdateRecordRequest{HRPhone: &badPhone}).Validate(); err == nil {
		t.Error("bad phone should fail")
	}
	// Present-but-empty phone passes the shape check trivially.
	if err := (&UpdateRecordRequest{HRPhone: &emptyPhone}).Validate(); err != nil {
		t.Errorf("empty phone should pass, got %v", err)
	}
}
